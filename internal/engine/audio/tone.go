package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// sweep is a sine tone gliding from one frequency to another with a linear
// attack and release.
type sweep struct {
	from, to float64
	rate     beep.SampleRate

	total   int
	attack  int
	release int

	pos   int
	phase float64
}

// NewSweep returns a mono sine sweep played on both channels.
func NewSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	edge := min(rate.N(10*time.Millisecond), total/2)
	return &sweep{
		from:    from,
		to:      to,
		rate:    rate,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t

		v := math.Sin(2*math.Pi*s.phase) * s.gain()
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) gain() float64 {
	switch {
	case s.attack > 0 && s.pos < s.attack:
		return float64(s.pos) / float64(s.attack)
	case s.release > 0 && s.pos >= s.total-s.release:
		return float64(s.total-s.pos) / float64(s.release)
	}
	return 1
}

func (s *sweep) Err() error { return nil }
