// Package diagram drives the ejection angle diagram: a timed animation of
// two direction lines and the arc between them around an origin body.
package diagram

import (
	"fmt"
	"time"
)

// Phase is one stage of the diagram animation.
type Phase uint8

// Animation phases, in playback order.
const (
	Hidden Phase = iota
	LinesAppearing
	ArcAppearing
	FullPicture
	Hiding
)

var phaseNames = [...]string{
	Hidden:         "hidden",
	LinesAppearing: "lines-appearing",
	ArcAppearing:   "arc-appearing",
	FullPicture:    "full-picture",
	Hiding:         "hiding",
}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// transitions maps each timed phase to the phase entered once its duration
// has elapsed. Hidden and FullPicture only leave through Start or Hide.
var transitions = map[Phase]Phase{
	LinesAppearing: ArcAppearing,
	ArcAppearing:   FullPicture,
	Hiding:         Hidden,
}

// Timings holds the duration of every timed phase.
type Timings struct {
	Appear time.Duration // LinesAppearing and ArcAppearing, each
	Hide   time.Duration
}

// DefaultTimings returns the stock animation pacing.
func DefaultTimings() Timings {
	return Timings{
		Appear: 500 * time.Millisecond,
		Hide:   250 * time.Millisecond,
	}
}

// duration returns how long p lasts, and false for untimed phases.
func (t Timings) duration(p Phase) (time.Duration, bool) {
	switch p {
	case LinesAppearing, ArcAppearing:
		return t.Appear, true
	case Hiding:
		return t.Hide, true
	case Hidden, FullPicture:
		return 0, false
	}
	panic(unreachablePhase(p))
}

func unreachablePhase(p Phase) string {
	return fmt.Sprintf("diagram: unreachable animation %s", p)
}
