package diagram

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/pkg/math"
)

// FrameConverter maps a direction from the controller's reference frame
// into the rendering world frame.
type FrameConverter interface {
	ToWorld(dir math.Vec3) math.Vec3
}

// Clock returns the current time. Values should carry a monotonic reading.
type Clock func() time.Time

// Option configures a Controller.
type Option func(*Controller)

// WithTimings overrides the phase durations. Non-positive values keep the
// default for that phase.
func WithTimings(t Timings) Option {
	return func(c *Controller) {
		if t.Appear > 0 {
			c.timings.Appear = t.Appear
		}
		if t.Hide > 0 {
			c.timings.Hide = t.Hide
		}
	}
}

// WithProportions overrides the distance multipliers.
func WithProportions(p Proportions) Option {
	return func(c *Controller) {
		if p.valid() {
			c.proportions = p
		}
	}
}

// WithFrame sets the reference-to-world frame conversion.
func WithFrame(f FrameConverter) Option {
	return func(c *Controller) {
		c.frame = f
	}
}

// WithClock sets the time source used by Start and Hide.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.now = clock
	}
}

// WithLogger sets the logger phase transitions are reported to.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}
