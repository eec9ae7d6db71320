package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFrame      = flag.String("frame", "", "Reference frame: identity or zup")
	flagAppear     = flag.Duration("appear", 0, "Duration of each appearance phase")
	flagHide       = flag.Duration("hide", 0, "Duration of the collapse phase")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFPS        = flag.Int("fps", 0, "Trace frames per second")
	flagDuration   = flag.Duration("duration", 0, "Trace length")
	flagMute       = flag.Bool("mute", false, "Disable phase cues")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFrame != "" {
		cfg.Diagram.Frame = *flagFrame
	}
	if *flagAppear > 0 {
		cfg.Diagram.AppearTime = *flagAppear
	}
	if *flagHide > 0 {
		cfg.Diagram.HideTime = *flagHide
	}
	if *flagWindowed {
		cfg.View.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.View.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.View.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.View.Height = *flagHeight
	}
	if *flagFPS > 0 {
		cfg.Trace.FPS = *flagFPS
	}
	if *flagDuration > 0 {
		cfg.Trace.Duration = *flagDuration
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
}

// resetFlags clears overrides; used by tests.
func resetFlags() {
	*flagConfig = ""
	*flagDebug = false
	*flagFrame = ""
	*flagAppear = 0
	*flagHide = 0
	*flagWindowed = false
	*flagFullscreen = false
	*flagWidth = 0
	*flagHeight = 0
	*flagFPS = 0
	*flagDuration = 0
	*flagMute = false
}
