package viewer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/internal/config"
	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/engine/audio"
	"github.com/Faultbox/ejection-angle/internal/engine/camera"
	"github.com/Faultbox/ejection-angle/internal/engine/input"
	"github.com/Faultbox/ejection-angle/internal/overlay"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// CuePlayer plays the sound announcing a phase.
type CuePlayer interface {
	Play(c audio.Cue) error
}

// Session is the viewer state that does not touch the GPU: the controller,
// its overlay, the camera and the map view toggle. It is the overlay's
// SceneQuery.
type Session struct {
	log     *zap.Logger
	factory overlay.PrimitiveFactory
	cues    CuePlayer
	opts    []diagram.Option

	ctrl     *diagram.Controller
	overlay  *overlay.Overlay
	camera   *camera.OrbitCamera
	scenario config.ScenarioConfig
	reach    float32
	fov      float32
	distance float32

	mapView bool
	phase   diagram.Phase
}

var _ overlay.SceneQuery = (*Session)(nil)

// NewSession builds the controller and overlay described by cfg. cues may
// be nil. opts are appended to the controller options of every build.
func NewSession(cfg *config.Config, factory overlay.PrimitiveFactory, cues CuePlayer, log *zap.Logger, opts ...diagram.Option) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		log:     log,
		factory: factory,
		cues:    cues,
		opts:    opts,
		camera:  camera.NewOrbitCamera(),
		mapView: true,
	}
	if err := s.build(cfg); err != nil {
		return nil, err
	}
	s.ResetCamera()
	return s, nil
}

func (s *Session) build(cfg *config.Config) error {
	opts, err := cfg.Diagram.Options()
	if err != nil {
		return fmt.Errorf("diagram options: %w", err)
	}
	styles, err := cfg.Diagram.Styles()
	if err != nil {
		return fmt.Errorf("diagram styles: %w", err)
	}
	opts = append(opts, diagram.WithLogger(s.log.Named("diagram")))
	ctrl := diagram.New(append(opts, s.opts...)...)

	ov, err := overlay.New(ctrl, s, s.factory, styles, s.log.Named("overlay"))
	if err != nil {
		return err
	}

	s.ctrl = ctrl
	s.overlay = ov
	s.phase = ctrl.Phase()
	s.scenario = cfg.Scenario
	s.reach = cfg.Diagram.LineScale
	s.fov = cfg.View.FOV * math32.Pi / 180
	s.distance = cfg.View.CameraDistance
	return nil
}

// ViewActive reports whether the map view, where the diagram lives, is on.
func (s *Session) ViewActive() bool {
	return s.mapView
}

// Controller returns the current controller.
func (s *Session) Controller() *diagram.Controller {
	return s.ctrl
}

// Overlay returns the current overlay.
func (s *Session) Overlay() *overlay.Overlay {
	return s.overlay
}

// Camera returns the orbit camera.
func (s *Session) Camera() *camera.OrbitCamera {
	return s.camera
}

// ResetCamera frames the scenario origin.
func (s *Session) ResetCamera() {
	if s.fov > 0 {
		s.camera.FOV = s.fov
	}
	s.camera.FitOrigin(s.scenario.Origin(), s.reach)
	if s.distance > 0 {
		s.camera.Distance = math.Clamp(s.distance, s.camera.MinDistance, s.camera.MaxDistance)
	}
}

// Apply performs a keyboard or HUD action. Actions the session does not
// own are ignored.
func (s *Session) Apply(a input.Action) error {
	switch a {
	case input.ActionStart:
		asym, peri := s.scenario.Directions()
		if err := s.ctrl.Start(s.scenario.Origin(), asym, peri); err != nil {
			return err
		}
	case input.ActionHide:
		s.ctrl.Hide()
	case input.ActionToggleMap:
		s.mapView = !s.mapView
		s.log.Debug("map view toggled", zap.Bool("map_view", s.mapView))
	case input.ActionResetCamera:
		s.ResetCamera()
	}
	return nil
}

// SetMapView switches the map view on or off.
func (s *Session) SetMapView(on bool) {
	s.mapView = on
}

// Update draws the overlay for now and plays the cue of a phase that began
// since the last call.
func (s *Session) Update(now time.Time) (diagram.Frame, error) {
	f, err := s.overlay.Draw(now)
	if err != nil {
		return f, err
	}
	if p := s.ctrl.Phase(); p != s.phase {
		silent := s.phase == diagram.Hidden && p == diagram.Hiding
		s.phase = p
		if c, ok := audio.CueForPhase(p); ok && !silent && s.cues != nil {
			if err := s.cues.Play(c); err != nil {
				s.log.Debug("cue not played", zap.Error(err))
			}
		}
	}
	return f, nil
}

// Reload rebuilds the controller and overlay from cfg. A diagram that was
// showing is started again with the new settings.
func (s *Session) Reload(cfg *config.Config) error {
	showing := s.ctrl.IsVisible() && !s.ctrl.IsHiding()
	old := s.overlay

	if err := s.build(cfg); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	old.Close()

	s.log.Info("configuration reloaded", zap.Bool("restarted", showing))
	if showing {
		return s.Apply(input.ActionStart)
	}
	return nil
}

// Close releases the overlay primitives.
func (s *Session) Close() {
	if s.overlay != nil {
		s.overlay.Close()
	}
}
