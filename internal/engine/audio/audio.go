// Package audio plays short cues when the diagram appears, settles and
// collapses.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/Faultbox/ejection-angle/internal/diagram"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

var errNotInitialized = errors.New("audio not initialized")

// Cue is a sound tied to a diagram phase.
type Cue int

const (
	CueAppear Cue = iota
	CueSettle
	CueHide
)

func (c Cue) String() string {
	switch c {
	case CueAppear:
		return "appear"
	case CueSettle:
		return "settle"
	case CueHide:
		return "hide"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// CueForPhase returns the cue announcing that p has begun.
func CueForPhase(p diagram.Phase) (Cue, bool) {
	switch p {
	case diagram.LinesAppearing:
		return CueAppear, true
	case diagram.FullPicture:
		return CueSettle, true
	case diagram.Hiding:
		return CueHide, true
	}
	return 0, false
}

// Manager mixes cues onto the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64

	// WAV overrides per cue, decoded on every play
	samples map[Cue][]byte

	mixer *beep.Mixer
}

// New creates a manager at the given volume (0.0 to 1.0).
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		samples:    make(map[Cue][]byte),
		mixer:      &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops all cues.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// SetVolume sets the volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// LoadCue replaces the synthesized sound of c with a WAV file.
func (m *Manager) LoadCue(c Cue, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load cue: %w", err)
	}
	if _, _, err := wav.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("load cue %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples[c] = data
	return nil
}

// Play starts c on top of whatever is already playing.
func (m *Manager) Play(c Cue) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume
	m.mu.RUnlock()

	if !initialized {
		return errNotInitialized
	}

	s, err := m.streamer(c)
	if err != nil {
		return err
	}

	speaker.Lock()
	m.mixer.Add(withVolume(s, vol))
	speaker.Unlock()
	return nil
}

// streamer returns the WAV override of c, resampled if needed, or the
// synthesized tone.
func (m *Manager) streamer(c Cue) (beep.Streamer, error) {
	m.mu.RLock()
	data, ok := m.samples[c]
	m.mu.RUnlock()

	if !ok {
		return synthesize(c, m.sampleRate), nil
	}

	s, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if format.SampleRate != m.sampleRate {
		return beep.Resample(4, format.SampleRate, m.sampleRate, s), nil
	}
	return s, nil
}

// synthesize returns the built-in sound of c: a rising chirp as the lines
// grow, a short high ping when the arc closes and a falling chirp on hide.
func synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueAppear:
		return NewSweep(440, 660, 180*time.Millisecond, rate)
	case CueSettle:
		return NewSweep(880, 880, 90*time.Millisecond, rate)
	case CueHide:
		return NewSweep(660, 330, 150*time.Millisecond, rate)
	}
	panic(fmt.Sprintf("audio: unknown cue %d", int(c)))
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToGain(vol),
		Silent:   vol <= 0,
	}
}

// volumeToGain converts a 0-1 amplitude to the exponent effects.Volume
// expects with base 2: vol=1 -> 0, vol=0.5 -> -1, vol=0.25 -> -2.
func volumeToGain(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
