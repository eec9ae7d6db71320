package trace

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

var (
	origin = diagram.Origin{Position: math.Vec3{X: 10}, Radius: 2}
	east   = math.Vec3{X: 1}
	north  = math.Vec3{Y: 1}
)

func run(t *testing.T, o Options, opts ...diagram.Option) *Trace {
	t.Helper()
	tr, err := NewRecorder(nil, opts...).Run(context.Background(), o, origin, east, north)
	require.NoError(t, err)
	return tr
}

func at(tr *Trace, d time.Duration) Record {
	for _, r := range tr.Records {
		if r.T == d {
			return r
		}
	}
	panic("no record at " + d.String())
}

func TestTimeline(t *testing.T) {
	tr := run(t, Options{FPS: 100, Duration: 1500 * time.Millisecond, HideAt: 1200 * time.Millisecond})

	assert.Len(t, tr.Records, 151)
	assert.Equal(t, []Transition{
		{T: 0, Phase: "lines-appearing"},
		{T: 510 * time.Millisecond, Phase: "arc-appearing"},
		{T: 1010 * time.Millisecond, Phase: "full-picture"},
		{T: 1200 * time.Millisecond, Phase: "hiding"},
		{T: 1460 * time.Millisecond, Phase: "hidden"},
	}, tr.Transitions)

	mid := at(tr, 250*time.Millisecond)
	assert.Equal(t, "lines-appearing", mid.Phase)
	assert.InDelta(t, 0.5, mid.Fraction, 1e-6)

	// The frame that completes a phase still reports it at fraction 1.
	end := at(tr, 500*time.Millisecond)
	assert.Equal(t, "lines-appearing", end.Phase)
	assert.Equal(t, float32(1), end.Fraction)
}

func TestRecordGeometry(t *testing.T) {
	tr := run(t, Options{FPS: 100, Duration: 1500 * time.Millisecond, HideAt: 1200 * time.Millisecond})

	lines := at(tr, 250*time.Millisecond)
	require.NotNil(t, lines.Asymptote)
	assert.Nil(t, lines.Periapsis, "second line is not drawn while the first grows")
	assert.Nil(t, lines.Arc)
	assert.InDelta(t, 15, lines.Asymptote.To[0], 1e-4, "half of 5 radii east of x=10")

	full := at(tr, 1100*time.Millisecond)
	require.NotNil(t, full.Arc)
	assert.Equal(t, diagram.ArcPoints, full.Arc.Points)
	assert.InDelta(t, 6, full.Arc.Radius, 1e-4)
	assert.InDelta(t, 16, full.Arc.First[0], 1e-4)
	assert.InDelta(t, 6, full.Arc.Last[1], 1e-4)

	gone := at(tr, 1500*time.Millisecond)
	assert.Equal(t, "hidden", gone.Phase)
	assert.Nil(t, gone.Asymptote)
	assert.Nil(t, gone.Arc)
}

func TestNoHide(t *testing.T) {
	tr := run(t, Options{FPS: 10, Duration: 3 * time.Second})
	last := tr.Records[len(tr.Records)-1]
	assert.Equal(t, "full-picture", last.Phase)
	assert.Equal(t, float32(1), last.Fraction)
}

func TestControllerOptionsApply(t *testing.T) {
	tr := run(t, Options{FPS: 10, Duration: 500 * time.Millisecond},
		diagram.WithTimings(diagram.Timings{Appear: 100 * time.Millisecond}))
	assert.Equal(t, "full-picture", tr.Records[len(tr.Records)-1].Phase)
}

func TestInvalidOptions(t *testing.T) {
	r := NewRecorder(nil)
	_, err := r.Run(context.Background(), Options{FPS: 0, Duration: time.Second}, origin, east, north)
	assert.ErrorIs(t, err, ErrInvalidOptions)
	_, err = r.Run(context.Background(), Options{FPS: 30}, origin, east, north)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestInvalidStart(t *testing.T) {
	_, err := NewRecorder(nil).Run(context.Background(), Options{FPS: 30, Duration: time.Second},
		origin, math.Vec3{}, north)
	assert.ErrorIs(t, err, diagram.ErrZeroDirection)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRecorder(nil).Run(ctx, Options{FPS: 30, Duration: time.Second}, origin, east, north)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	tr := run(t, Options{FPS: 4, Duration: 2 * time.Second, HideAt: 1500 * time.Millisecond})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tr))
	out := buf.String()
	assert.Contains(t, out, "phase: full-picture")
	assert.Contains(t, out, "fps: 4")

	var decoded Trace
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, tr.Transitions, decoded.Transitions)
}
