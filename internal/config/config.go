// Package config handles diagram, viewer and logging configuration.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all settings.
type Config struct {
	Diagram  DiagramConfig  `yaml:"diagram"`
	Scenario ScenarioConfig `yaml:"scenario"`
	View     ViewConfig     `yaml:"view"`
	Trace    TraceConfig    `yaml:"trace"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DiagramConfig holds animation pacing, proportions and looks.
type DiagramConfig struct {
	AppearTime time.Duration `yaml:"appear_time"`
	HideTime   time.Duration `yaml:"hide_time"`
	LineScale  float32       `yaml:"line_scale"`
	ArcScale   float32       `yaml:"arc_scale"`
	LabelScale float32       `yaml:"label_scale"`
	Frame      string        `yaml:"frame"` // identity or zup

	Asymptote        StyleConfig `yaml:"asymptote"`
	Periapsis        StyleConfig `yaml:"periapsis"`
	Arc              StyleConfig `yaml:"arc"`
	LabelColor       string      `yaml:"label_color"`
	AsymptoteCaption string      `yaml:"asymptote_caption"`
	PeriapsisCaption string      `yaml:"periapsis_caption"`
}

// StyleConfig is the look of one line.
type StyleConfig struct {
	Color string  `yaml:"color"` // hex, #rrggbb
	Width float32 `yaml:"width"`
}

// ScenarioConfig is the diagram shown on startup.
type ScenarioConfig struct {
	Position  [3]float32 `yaml:"position"`
	Radius    float32    `yaml:"radius"`
	Asymptote [3]float32 `yaml:"asymptote"`
	Periapsis [3]float32 `yaml:"periapsis"`
}

// ViewConfig holds window and camera settings of the viewers.
type ViewConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Fullscreen     bool    `yaml:"fullscreen"`
	VSync          bool    `yaml:"vsync"`
	FOV            float32 `yaml:"fov"`             // vertical, degrees
	CameraDistance float32 `yaml:"camera_distance"` // 0 fits the scenario
	ScreenshotDir  string  `yaml:"screenshot_dir"`
}

// TraceConfig drives the headless trace dump.
type TraceConfig struct {
	FPS      int           `yaml:"fps"`
	Duration time.Duration `yaml:"duration"`
	HideAt   time.Duration `yaml:"hide_at"` // 0 never hides
}

// AudioConfig holds the phase cue settings of the viewer. Sound paths are
// optional WAV files replacing the built-in tones.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	AppearSound string  `yaml:"appear_sound"`
	SettleSound string  `yaml:"settle_sound"`
	HideSound   string  `yaml:"hide_sound"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Diagram: DiagramConfig{
			AppearTime:       500 * time.Millisecond,
			HideTime:         250 * time.Millisecond,
			LineScale:        5,
			ArcScale:         3,
			LabelScale:       5,
			Frame:            "identity",
			Asymptote:        StyleConfig{Color: "#0000ff", Width: 2},
			Periapsis:        StyleConfig{Color: "#ff0000", Width: 2},
			Arc:              StyleConfig{Color: "#00ff00", Width: 2},
			LabelColor:       "#ffffff",
			AsymptoteCaption: "Escape direction",
			PeriapsisCaption: "Burn position",
		},
		Scenario: ScenarioConfig{
			Radius:    10,
			Asymptote: [3]float32{1, 0, 0},
			Periapsis: [3]float32{0, 1, 0},
		},
		View: ViewConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			FOV:           45,
			ScreenshotDir: "screenshots",
		},
		Trace: TraceConfig{
			FPS:      60,
			Duration: 2 * time.Second,
			HideAt:   1500 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that would otherwise fail deep inside a viewer.
func (c *Config) Validate() error {
	var errs []error
	d := c.Diagram
	if d.AppearTime <= 0 || d.HideTime <= 0 {
		errs = append(errs, errors.New("diagram timings must be positive"))
	}
	if d.LineScale <= 0 || d.ArcScale <= 0 || d.LabelScale <= 0 {
		errs = append(errs, errors.New("diagram scales must be positive"))
	}
	if _, err := d.Styles(); err != nil {
		errs = append(errs, err)
	}
	if _, err := d.Converter(); err != nil {
		errs = append(errs, err)
	}
	if c.Scenario.Radius <= 0 {
		errs = append(errs, errors.New("scenario radius must be positive"))
	}
	if c.Trace.FPS <= 0 {
		errs = append(errs, fmt.Errorf("trace fps %d must be positive", c.Trace.FPS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v must be within [0, 1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
