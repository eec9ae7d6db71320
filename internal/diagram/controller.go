package diagram

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/pkg/math"
)

// Origin is the body the diagram is drawn around.
type Origin struct {
	Position math.Vec3
	Radius   float32
}

// Frame is the animation state produced by one Tick: the phase being drawn
// and the progress through it, always within [0, 1].
type Frame struct {
	Phase    Phase
	Fraction float32
}

// Controller runs the diagram animation. It is not safe for concurrent use;
// Start, Hide and Tick are expected to be called from the render loop.
type Controller struct {
	timings     Timings
	proportions Proportions
	frame       FrameConverter
	now         Clock
	log         *zap.Logger

	phase      Phase
	phaseStart time.Time

	started   bool
	origin    Origin
	asymptote math.Vec3
	periapsis math.Vec3

	// suppressed marks a Hiding phase entered while nothing was shown.
	suppressed bool

	last     Frame
	lastTick time.Time
	ticked   bool
}

// New creates an idle controller in the Hidden phase.
func New(opts ...Option) *Controller {
	c := &Controller{
		timings:     DefaultTimings(),
		proportions: DefaultProportions(),
		now:         time.Now,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start shows the diagram for origin between the escape asymptote and the
// periapsis directions, replaying the full appearance sequence. Invalid
// input is rejected and leaves the controller untouched.
func (c *Controller) Start(origin Origin, asymptote, periapsis math.Vec3) error {
	if !(origin.Radius > 0) || !origin.Position.IsFinite() {
		return fmt.Errorf("start diagram: %w", ErrInvalidOrigin)
	}
	a, err := unit(asymptote)
	if err != nil {
		return fmt.Errorf("start diagram: asymptote: %w", err)
	}
	p, err := unit(periapsis)
	if err != nil {
		return fmt.Errorf("start diagram: periapsis: %w", err)
	}

	c.started = true
	c.origin = origin
	c.asymptote = a
	c.periapsis = p
	c.suppressed = false
	c.enter(LinesAppearing, c.now())
	return nil
}

// Hide collapses the diagram from whatever phase it is in. A diagram that
// is already gone, or still collapsing from gone, stays invisible.
func (c *Controller) Hide() {
	c.suppressed = c.phase == Hidden || (c.phase == Hiding && c.suppressed)
	c.enter(Hiding, c.now())
}

// enter switches to phase p starting at t. Mutators also drop the cached
// tick so the next Tick is evaluated even at an unchanged time.
func (c *Controller) enter(p Phase, t time.Time) {
	if p != c.phase {
		c.log.Debug("diagram phase changed",
			zap.Stringer("from", c.phase),
			zap.Stringer("to", p),
		)
	}
	c.phase = p
	c.phaseStart = t
	c.last = Frame{Phase: p, Fraction: restFraction(p)}
	c.ticked = false
}

// Tick advances the animation to now and returns the frame to draw. A time
// that does not move past the previous tick returns the previous frame.
func (c *Controller) Tick(now time.Time) Frame {
	if c.ticked && !now.After(c.lastTick) {
		return c.last
	}
	c.ticked = true
	c.lastTick = now

	f := Frame{Phase: c.phase, Fraction: restFraction(c.phase)}
	if d, timed := c.timings.duration(c.phase); timed {
		progress := float32(1)
		if d > 0 {
			progress = float32(now.Sub(c.phaseStart).Seconds() / d.Seconds())
		}
		if progress >= 1 {
			c.enter(transitions[c.phase], now)
			c.ticked = true
		}
		f.Fraction = math.Clamp01(progress)
	}
	c.last = f
	return f
}

// restFraction is the fraction reported for a phase before any time passes.
func restFraction(p Phase) float32 {
	switch p {
	case FullPicture:
		return 1
	case Hidden, LinesAppearing, ArcAppearing, Hiding:
		return 0
	}
	panic(unreachablePhase(p))
}

// Phase returns the current phase. After a tick that completed a phase this
// is already the following one, while Frame still reports the drawn phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Frame returns the frame produced by the last Tick.
func (c *Controller) Frame() Frame {
	return c.last
}

// IsVisible reports whether the diagram is anywhere but Hidden.
func (c *Controller) IsVisible() bool {
	return c.phase != Hidden
}

// IsHiding reports whether the diagram is collapsing or already gone.
func (c *Controller) IsHiding() bool {
	return c.phase == Hiding || c.phase == Hidden
}

// Origin returns the origin body and whether one has been set.
func (c *Controller) Origin() (Origin, bool) {
	return c.origin, c.started
}

// Directions returns the stored unit directions in the reference frame.
func (c *Controller) Directions() (asymptote, periapsis math.Vec3) {
	return c.asymptote, c.periapsis
}

// Geometry returns the line and arc points for the last frame, in world
// frame. Nothing is drawn before the first Start.
func (c *Controller) Geometry() Geometry {
	if !c.started || (c.suppressed && c.last.Phase == Hiding) {
		return Geometry{}
	}
	a, p := c.worldDirections()
	return c.proportions.Generate(c.origin, a, p, c.last)
}

// LabelAnchors projects the caption anchors through proj. ok is false unless
// the last frame drew the full picture.
func (c *Controller) LabelAnchors(proj Projector) (labels Labels, ok bool) {
	if !c.started || c.last.Phase != FullPicture {
		return Labels{}, false
	}
	a, p := c.worldDirections()
	dist := c.origin.Radius * c.proportions.Label
	return ProjectLabels(proj, c.origin.Position, a, p, dist), true
}

func (c *Controller) worldDirections() (math.Vec3, math.Vec3) {
	if c.frame == nil {
		return c.asymptote, c.periapsis
	}
	return c.frame.ToWorld(c.asymptote).Normalize(), c.frame.ToWorld(c.periapsis).Normalize()
}

func unit(v math.Vec3) (math.Vec3, error) {
	if !v.IsFinite() || v.Length() == 0 {
		return math.Vec3{}, ErrZeroDirection
	}
	return v.Normalize(), nil
}
