// Package viewer is the interactive SDL/OpenGL front-end: a 3D view of the
// scenario origin with the ejection angle diagram drawn over it, a small
// HUD, phase sounds and configuration hot reload.
package viewer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/internal/config"
	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/engine/audio"
	"github.com/Faultbox/ejection-angle/internal/engine/input"
	"github.com/Faultbox/ejection-angle/internal/engine/screenshot"
	"github.com/Faultbox/ejection-angle/internal/engine/ui2d"
	"github.com/Faultbox/ejection-angle/internal/engine/window"
)

const (
	hudX, hudY = 10, 10
	hudW, hudH = 380, 200
	labelScale = 2
)

// Viewer is the main viewer instance.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window  *window.Window
	ui      *ui2d.Renderer
	hud     *ui2d.Context
	input   *input.Input
	layer   *ui2d.Layer
	session *Session
	audio   *audio.Manager
	shots   *screenshot.Capture

	configPath string
	shotDue    bool
	lastErr    string
}

// New opens the window and builds everything drawn in it. configPath is
// watched for changes when not empty.
func New(cfg *config.Config, configPath string, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing viewer",
		zap.Int("width", cfg.View.Width),
		zap.Int("height", cfg.View.Height),
	)

	v := &Viewer{
		cfg:        cfg,
		log:        log,
		configPath: configPath,
		input:      input.New(nil),
		layer:      ui2d.NewLayer(),
		shots:      screenshot.New(cfg.View.ScreenshotDir, "angleviz"),
	}

	var err error
	// Window first, everything GL needs its context.
	v.window, err = window.New(window.Config{
		Title:      "Ejection angle",
		Width:      cfg.View.Width,
		Height:     cfg.View.Height,
		Fullscreen: cfg.View.Fullscreen,
		VSync:      cfg.View.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := v.window.DrawableSize()
	v.ui, err = ui2d.New(w, h)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create 2D renderer: %w", err)
	}
	v.hud = ui2d.NewContext(v.ui)

	var cues CuePlayer
	if cfg.Audio.Enabled {
		v.audio = v.initAudio(cfg.Audio)
		if v.audio != nil {
			cues = v.audio
		}
	}

	v.session, err = NewSession(cfg, v.layer, cues, log)
	if err != nil {
		v.Close()
		return nil, err
	}

	log.Info("viewer initialized successfully")
	return v, nil
}

// initAudio opens the speaker. A machine without sound keeps working
// silently.
func (v *Viewer) initAudio(cfg config.AudioConfig) *audio.Manager {
	m := audio.New(cfg.Volume)
	if err := m.Init(); err != nil {
		v.log.Warn("audio disabled", zap.Error(err))
		return nil
	}
	sounds := map[audio.Cue]string{
		audio.CueAppear: cfg.AppearSound,
		audio.CueSettle: cfg.SettleSound,
		audio.CueHide:   cfg.HideSound,
	}
	for c, path := range sounds {
		if path == "" {
			continue
		}
		if err := m.LoadCue(c, path); err != nil {
			v.log.Warn("using built-in cue", zap.Stringer("cue", c), zap.Error(err))
		}
	}
	return m
}

// Run starts the main loop and returns when the window is closed, Escape
// is pressed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	var updates <-chan *config.Config
	if v.configPath != "" {
		ch, err := config.Watch(ctx, v.configPath, v.log.Named("config"))
		if err != nil {
			v.log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			updates = ch
		}
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting viewer loop")
	for v.running {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				break
			}
			v.reload(cfg)
		default:
		}

		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.input.Update() {
			break
		}
		v.handleEvents()

		if err := v.render(now); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if v.shotDue {
			v.shotDue = false
			v.capture()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (v *Viewer) handleEvents() {
	hi := v.hud.Input()
	sx, sy := v.pixelScale()
	hi.MouseX = float32(v.input.MouseX) * sx
	hi.MouseY = float32(v.input.MouseY) * sy
	hi.MouseLeftDown = v.input.LeftDown

	cam := v.session.Camera()
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventMouseMove:
			if v.input.LeftDown && !v.hud.WantsMouse() {
				cam.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventWheel:
			hi.ScrollY += event.Wheel
			if !v.hud.WantsMouse() {
				cam.HandleZoom(event.Wheel)
			}
		case input.EventAction:
			v.apply(event.Action)
		}
	}
}

func (v *Viewer) apply(a input.Action) {
	switch a {
	case input.ActionQuit:
		v.running = false
	case input.ActionScreenshot:
		v.shotDue = true
	default:
		if err := v.session.Apply(a); err != nil {
			v.lastErr = err.Error()
			v.log.Warn("action failed", zap.Stringer("action", a), zap.Error(err))
		}
	}
}

// pixelScale converts window coordinates to drawable pixels.
func (v *Viewer) pixelScale() (float32, float32) {
	ww, wh := v.window.Size()
	dw, dh := v.window.DrawableSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(dw) / float32(ww), float32(dh) / float32(wh)
}

func (v *Viewer) render(now time.Time) error {
	f, err := v.session.Update(now)
	if err != nil {
		return err
	}

	w, h := v.window.BeginFrame(0.05, 0.06, 0.09)
	v.ui.Resize(w, h)
	proj := v.session.Camera().Projector(w, h)

	v.ui.Begin()
	v.hud.Begin()
	v.layer.Draw(v.ui, proj, float32(h))
	v.session.Overlay().DrawLabels(proj, ui2d.Captions{Canvas: v.ui, Scale: labelScale}, float32(h))
	v.drawHUD(f)
	v.hud.End()
	v.ui.End()
	return nil
}

func (v *Viewer) drawHUD(f diagram.Frame) {
	hud := v.hud
	hud.BeginWindow("diagram", hudX, hudY, hudW, hudH, "Ejection angle")

	hud.Row(18)
	hud.Label(f.Phase.String())
	hud.Row(20)
	hud.ProgressBar(f.Fraction, 0, 16, "")

	hud.Row(28)
	if hud.Button("start", 100, "Start") {
		v.apply(input.ActionStart)
	}
	if hud.Button("hide", 100, "Hide") {
		v.apply(input.ActionHide)
	}

	hud.Row(24)
	if on := hud.Checkbox("map", "Map view", v.session.ViewActive()); on != v.session.ViewActive() {
		v.session.SetMapView(on)
	}

	if v.lastErr != "" {
		hud.Separator()
		hud.Row(18)
		hud.LabelColored(v.lastErr, ui2d.ColorError)
	}
	hud.EndWindow()
}

func (v *Viewer) capture() {
	w, h := v.window.DrawableSize()
	pixels := screenshot.ReadFramebuffer(w, h)
	name, err := v.shots.FromPixels(pixels, w, h, v.session.Controller().Phase().String())
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", name))
}

func (v *Viewer) reload(cfg *config.Config) {
	if err := v.session.Reload(cfg); err != nil {
		v.log.Warn("keeping previous configuration", zap.Error(err))
		return
	}
	v.cfg = cfg
	v.lastErr = ""
	if v.audio != nil {
		v.audio.SetVolume(cfg.Audio.Volume)
	}
}

// Close releases the viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.session != nil {
		v.session.Close()
	}
	if v.audio != nil {
		v.audio.Close()
	}
	if v.ui != nil {
		v.ui.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
