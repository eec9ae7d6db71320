// Package trace drives a diagram controller with a synthetic clock and
// records what it would draw on every frame.
package trace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// ErrInvalidOptions is returned for a non-positive fps or duration.
var ErrInvalidOptions = errors.New("invalid trace options")

// Options controls the recording.
type Options struct {
	FPS      int
	Duration time.Duration
	HideAt   time.Duration // 0 never hides
}

// Vec is a point in YAML flow style.
type Vec [3]float32

func vec(v math.Vec3) Vec {
	return Vec{v.X, v.Y, v.Z}
}

// Segment is a drawn line.
type Segment struct {
	From Vec `yaml:"from,flow"`
	To   Vec `yaml:"to,flow"`
}

// Arc summarizes the arc polyline.
type Arc struct {
	Points int     `yaml:"points"`
	First  Vec     `yaml:"first,flow"`
	Last   Vec     `yaml:"last,flow"`
	Radius float32 `yaml:"radius"`
}

// Record is one frame.
type Record struct {
	T         time.Duration `yaml:"t"`
	Phase     string        `yaml:"phase"`
	Fraction  float32       `yaml:"fraction"`
	Asymptote *Segment      `yaml:"asymptote,omitempty"`
	Periapsis *Segment      `yaml:"periapsis,omitempty"`
	Arc       *Arc          `yaml:"arc,omitempty"`
}

// Transition marks the first frame drawn in a phase.
type Transition struct {
	T     time.Duration `yaml:"t"`
	Phase string        `yaml:"phase"`
}

// Trace is a full recording.
type Trace struct {
	FPS         int           `yaml:"fps"`
	HideAt      time.Duration `yaml:"hide_at,omitempty"`
	Transitions []Transition  `yaml:"transitions"`
	Records     []Record      `yaml:"records"`
}

// Recorder records traces with a fixed controller configuration.
type Recorder struct {
	opts []diagram.Option
	log  *zap.Logger
}

// NewRecorder creates a recorder. opts are applied to every controller it
// creates; the clock is always the recorder's own.
func NewRecorder(log *zap.Logger, opts ...diagram.Option) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{opts: opts, log: log}
}

// Run starts a diagram at t=0 and samples it every 1/FPS up to and
// including Duration, hiding it at HideAt.
func (r *Recorder) Run(ctx context.Context, o Options, origin diagram.Origin, asymptote, periapsis math.Vec3) (*Trace, error) {
	if o.FPS <= 0 || o.Duration <= 0 {
		return nil, fmt.Errorf("%w: fps %d, duration %v", ErrInvalidOptions, o.FPS, o.Duration)
	}

	base := time.Unix(0, 0)
	now := base
	opts := append([]diagram.Option{diagram.WithLogger(r.log)}, r.opts...)
	opts = append(opts, diagram.WithClock(func() time.Time { return now }))
	ctrl := diagram.New(opts...)

	if err := ctrl.Start(origin, asymptote, periapsis); err != nil {
		return nil, fmt.Errorf("record trace: %w", err)
	}

	step := time.Second / time.Duration(o.FPS)
	tr := &Trace{FPS: o.FPS, HideAt: o.HideAt}
	hidden := false
	for i := 0; ; i++ {
		t := time.Duration(i) * step
		if t > o.Duration {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		now = base.Add(t)
		if o.HideAt > 0 && !hidden && t >= o.HideAt {
			ctrl.Hide()
			hidden = true
		}
		f := ctrl.Tick(now)
		rec := record(t, f, ctrl.Geometry(), origin.Position)

		if n := len(tr.Records); n == 0 || tr.Records[n-1].Phase != rec.Phase {
			tr.Transitions = append(tr.Transitions, Transition{T: t, Phase: rec.Phase})
		}
		tr.Records = append(tr.Records, rec)
	}

	r.log.Info("trace recorded",
		zap.Int("frames", len(tr.Records)),
		zap.Int("transitions", len(tr.Transitions)),
		zap.Duration("duration", o.Duration),
	)
	return tr, nil
}

func record(t time.Duration, f diagram.Frame, g diagram.Geometry, center math.Vec3) Record {
	rec := Record{T: t, Phase: f.Phase.String(), Fraction: f.Fraction}
	if g.Asymptote.Drawn {
		rec.Asymptote = &Segment{From: vec(g.Asymptote.From), To: vec(g.Asymptote.To)}
	}
	if g.Periapsis.Drawn {
		rec.Periapsis = &Segment{From: vec(g.Periapsis.From), To: vec(g.Periapsis.To)}
	}
	if g.ArcDrawn && len(g.Arc) > 0 {
		first, last := g.Arc[0], g.Arc[len(g.Arc)-1]
		rec.Arc = &Arc{
			Points: len(g.Arc),
			First:  vec(first),
			Last:   vec(last),
			Radius: first.Distance(center),
		}
	}
	return rec
}

// Write encodes tr as YAML.
func Write(w io.Writer, tr *Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return enc.Close()
}
