package overlay

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

type fakeScene struct{ active bool }

func (s *fakeScene) ViewActive() bool { return s.active }

type fakePrimitive struct {
	name    string
	style   Style
	points  []math.Vec3
	enabled bool
	closed  bool
}

func (p *fakePrimitive) SetPoints(points []math.Vec3) { p.points = append(p.points[:0], points...) }
func (p *fakePrimitive) SetEnabled(enabled bool)      { p.enabled = enabled }
func (p *fakePrimitive) SetStyle(style Style)         { p.style = style }
func (p *fakePrimitive) Close()                       { p.closed = true }

type fakeFactory struct {
	made   map[string]*fakePrimitive
	failOn string
}

func (f *fakeFactory) NewPrimitive(name string, style Style, capacity int) (Primitive, error) {
	if name == f.failOn {
		return nil, errors.New("out of buffers")
	}
	if f.made == nil {
		f.made = map[string]*fakePrimitive{}
	}
	p := &fakePrimitive{name: name, style: style, points: make([]math.Vec3, 0, capacity)}
	f.made[name] = p
	return p, nil
}

type drawnLabel struct {
	rect diagram.Rect
	text string
}

type fakeDrawer struct{ labels []drawnLabel }

func (d *fakeDrawer) DrawLabel(r diagram.Rect, text string, _ LabelStyle) {
	d.labels = append(d.labels, drawnLabel{r, text})
}

type depthProjector struct{ behindZ float32 }

func (p depthProjector) WorldToScreen(w math.Vec3) diagram.ScreenPoint {
	return diagram.ScreenPoint{X: 640 + w.X, Y: 360 + w.Y, Depth: p.behindZ - w.Z}
}

type harness struct {
	base    time.Time
	now     time.Time
	ctrl    *diagram.Controller
	scene   *fakeScene
	factory *fakeFactory
	ov      *Overlay
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		base:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		scene:   &fakeScene{active: true},
		factory: &fakeFactory{},
	}
	h.now = h.base
	h.ctrl = diagram.New(diagram.WithClock(func() time.Time { return h.now }))
	ov, err := New(h.ctrl, h.scene, h.factory, DefaultStyles(), nil)
	require.NoError(t, err)
	h.ov = ov
	return h
}

func (h *harness) at(d time.Duration) time.Time {
	h.now = h.base.Add(d)
	return h.now
}

func (h *harness) prim(name string) *fakePrimitive {
	return h.factory.made[name]
}

func TestNewCreatesDisabledPrimitives(t *testing.T) {
	h := newHarness(t)
	require.Len(t, h.factory.made, 3)
	for _, name := range []string{"LineStart", "LineEnd", "LineArc"} {
		p := h.prim(name)
		require.NotNil(t, p, name)
		assert.False(t, p.enabled, name)
	}
	assert.Equal(t, Blue, h.prim("LineStart").style.Color)
	assert.Equal(t, diagram.ArcPoints, cap(h.prim("LineArc").points))
}

func TestNewReleasesOnFailure(t *testing.T) {
	factory := &fakeFactory{failOn: "LineArc"}
	_, err := New(diagram.New(), &fakeScene{}, factory, DefaultStyles(), nil)
	require.Error(t, err)
	assert.True(t, factory.made["LineStart"].closed)
	assert.True(t, factory.made["LineEnd"].closed)
}

func TestDrawPushesGeometry(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(diagram.Origin{Radius: 10}, math.Vec3{X: 1}, math.Vec3{Y: 1}))

	f, err := h.ov.Draw(h.at(250 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, diagram.LinesAppearing, f.Phase)
	start := h.prim("LineStart")
	assert.True(t, start.enabled)
	require.Len(t, start.points, 2)
	assert.InDelta(t, 25, start.points[1].X, 1e-3)
	assert.False(t, h.prim("LineEnd").enabled)
	assert.False(t, h.prim("LineArc").enabled)

	h.ov.Draw(h.at(500 * time.Millisecond))
	h.ov.Draw(h.at(time.Second))
	f, _ = h.ov.Draw(h.at(2 * time.Second))
	assert.Equal(t, diagram.FullPicture, f.Phase)
	assert.True(t, h.prim("LineEnd").enabled)
	assert.True(t, h.prim("LineArc").enabled)
	assert.Len(t, h.prim("LineArc").points, diagram.ArcPoints)
}

func TestDrawSuspendsWhileViewInactive(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(diagram.Origin{Radius: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}))
	h.ov.Draw(h.at(100 * time.Millisecond))
	require.True(t, h.prim("LineStart").enabled)

	h.scene.active = false
	h.ov.Draw(h.at(5 * time.Second))
	assert.False(t, h.prim("LineStart").enabled)
	assert.Equal(t, diagram.LinesAppearing, h.ctrl.Phase(), "phase must not change while suspended")

	h.scene.active = true
	h.ov.Draw(h.at(5*time.Second + time.Millisecond))
	assert.True(t, h.prim("LineStart").enabled)
	assert.Equal(t, diagram.ArcAppearing, h.ctrl.Phase())
}

func TestDrawDisablesWhenHidden(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(diagram.Origin{Radius: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}))
	h.ov.Draw(h.at(100 * time.Millisecond))

	h.at(200 * time.Millisecond)
	h.ctrl.Hide()
	h.ov.Draw(h.at(300 * time.Millisecond))
	assert.True(t, h.prim("LineArc").enabled)

	h.ov.Draw(h.at(time.Second))
	h.ov.Draw(h.at(2 * time.Second))
	assert.False(t, h.ctrl.IsVisible())
	for name, p := range h.factory.made {
		assert.False(t, p.enabled, name)
	}
}

func TestDrawLabels(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctrl.Start(diagram.Origin{Radius: 10}, math.Vec3{X: 1}, math.Vec3{Z: 1}))
	drawer := &fakeDrawer{}

	assert.Zero(t, h.ov.DrawLabels(depthProjector{behindZ: 1000}, drawer, 720), "not shown yet")

	h.ov.Draw(h.at(500 * time.Millisecond))
	h.ov.Draw(h.at(time.Second))
	require.Equal(t, diagram.FullPicture, h.ctrl.Phase())
	assert.Zero(t, h.ov.DrawLabels(depthProjector{behindZ: 1000}, drawer, 720), "arc still drawing")

	h.ov.Draw(h.at(1100 * time.Millisecond))
	n := h.ov.DrawLabels(depthProjector{behindZ: 1000}, drawer, 720)
	assert.Equal(t, 2, n)
	require.Len(t, drawer.labels, 2)
	assert.Equal(t, "Burn position", drawer.labels[0].text)
	assert.Equal(t, "Escape direction", drawer.labels[1].text)
	assert.Equal(t, diagram.Rect{X: 640 + 50 - 50, Y: 720 - 360 - 15, W: 100, H: 30}, drawer.labels[1].rect)

	// The burn anchor at z=50 falls behind a camera at z=20.
	drawer.labels = nil
	n = h.ov.DrawLabels(depthProjector{behindZ: 20}, drawer, 720)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Escape direction", drawer.labels[0].text)

	h.scene.active = false
	assert.Zero(t, h.ov.DrawLabels(depthProjector{behindZ: 1000}, drawer, 720))
}

func TestSetStyles(t *testing.T) {
	h := newHarness(t)
	s := DefaultStyles()
	s.Arc.Width = 6
	h.ov.SetStyles(s)
	assert.Equal(t, float32(6), h.prim("LineArc").style.Width)
}

func TestCloseReleasesPrimitives(t *testing.T) {
	h := newHarness(t)
	h.ov.Close()
	for name, p := range h.factory.made {
		assert.True(t, p.closed, name)
	}
	_, err := h.ov.Draw(h.at(time.Second))
	assert.Error(t, err)
}
