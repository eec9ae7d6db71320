package diagram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/ejection-angle/pkg/math"
)

// axisProjector looks down -Z from far away: screen X/Y are world X/Y
// offset to the viewport centre, depth is the distance in front of a camera
// sitting at z = 100, with anything past it treated as behind.
type axisProjector struct{}

func (axisProjector) WorldToScreen(p math.Vec3) ScreenPoint {
	return ScreenPoint{X: 400 + p.X, Y: 300 + p.Y, Depth: 100 - p.Z}
}

func fullPicture(t *testing.T, origin Origin, a, p math.Vec3) *Controller {
	t.Helper()
	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	require.NoError(t, c.Start(origin, a, p))
	c.Tick(clock.at(500 * time.Millisecond))
	c.Tick(clock.at(time.Second))
	c.Tick(clock.at(1100 * time.Millisecond))
	require.Equal(t, FullPicture, c.Frame().Phase)
	return c
}

func TestLabelAnchorsFullPicture(t *testing.T) {
	c := fullPicture(t, Origin{Radius: 10}, dirX, dirY)

	labels, ok := c.LabelAnchors(axisProjector{})
	require.True(t, ok)
	assertVec(t, math.Vec3{X: 50}, labels.Asymptote.World)
	assertVec(t, math.Vec3{Y: 50}, labels.Periapsis.World)
	assert.True(t, labels.Asymptote.Visible)
	assert.True(t, labels.Periapsis.Visible)
	assert.InDelta(t, 450, labels.Asymptote.Screen.X, eps)
	assert.InDelta(t, 350, labels.Periapsis.Screen.Y, eps)
}

func TestLabelAnchorBehindCamera(t *testing.T) {
	// Periapsis points at the camera and past it.
	c := fullPicture(t, Origin{Radius: 30}, dirX, math.Vec3{Z: 1})

	labels, ok := c.LabelAnchors(axisProjector{})
	require.True(t, ok)
	assert.True(t, labels.Asymptote.Visible)
	assert.False(t, labels.Periapsis.Visible)
	assert.LessOrEqual(t, labels.Periapsis.Screen.Depth, float32(0))
}

func TestLabelAnchorsOnlyInFullPicture(t *testing.T) {
	c := New()
	_, ok := c.LabelAnchors(axisProjector{})
	assert.False(t, ok, "never started")

	c, clock := started(t)
	c.Tick(clock.at(700 * time.Millisecond))
	_, ok = c.LabelAnchors(axisProjector{})
	assert.False(t, ok, "appearing")

	c, clock = started(t)
	c.Tick(clock.at(500 * time.Millisecond))
	f := c.Tick(clock.at(time.Second))
	require.Equal(t, FullPicture, c.Phase())
	require.Equal(t, ArcAppearing, f.Phase)
	_, ok = c.LabelAnchors(axisProjector{})
	assert.False(t, ok, "arc frame that completes the appearance")

	c.Tick(clock.at(1100 * time.Millisecond))
	_, ok = c.LabelAnchors(axisProjector{})
	assert.True(t, ok, "first full picture frame")

	c = fullPicture(t, Origin{Radius: 1}, dirX, dirY)
	c.Hide()
	_, ok = c.LabelAnchors(axisProjector{})
	assert.False(t, ok, "hiding")
}

func TestLabelRect(t *testing.T) {
	a := LabelAnchor{Screen: ScreenPoint{X: 200, Y: 100, Depth: 1}}
	got := a.Rect(720)
	assert.Equal(t, Rect{X: 150, Y: 605, W: 100, H: 30}, got)
}
