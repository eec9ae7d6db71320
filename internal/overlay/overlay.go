// Package overlay binds a diagram controller to the host's drawing
// primitives: three polylines per frame and two captions in the GUI pass.
package overlay

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// SceneQuery reports whether a view the diagram can be drawn in is active.
type SceneQuery interface {
	ViewActive() bool
}

// Primitive is a drawable connected polyline owned by the host renderer.
type Primitive interface {
	SetPoints(points []math.Vec3)
	SetEnabled(enabled bool)
	SetStyle(style Style)
	Close()
}

// PrimitiveFactory creates primitives. capacity is the number of points the
// primitive will be given every frame.
type PrimitiveFactory interface {
	NewPrimitive(name string, style Style, capacity int) (Primitive, error)
}

// LabelDrawer draws a caption in the GUI pass. r has a top-left origin.
type LabelDrawer interface {
	DrawLabel(r diagram.Rect, text string, style LabelStyle)
}

// Overlay draws one diagram. Create it when the hosting view starts and
// Close it when the view stops.
type Overlay struct {
	ctrl   *diagram.Controller
	scene  SceneQuery
	styles Styles
	log    *zap.Logger

	asymptote Primitive
	periapsis Primitive
	arc       Primitive

	viewActive bool
}

// New creates the overlay primitives through factory.
func New(ctrl *diagram.Controller, scene SceneQuery, factory PrimitiveFactory, styles Styles, log *zap.Logger) (*Overlay, error) {
	if log == nil {
		log = zap.NewNop()
	}
	o := &Overlay{
		ctrl:   ctrl,
		scene:  scene,
		styles: styles,
		log:    log,
	}

	specs := []struct {
		name     string
		style    Style
		capacity int
		dst      *Primitive
	}{
		{"LineStart", styles.Asymptote, 2, &o.asymptote},
		{"LineEnd", styles.Periapsis, 2, &o.periapsis},
		{"LineArc", styles.Arc, diagram.ArcPoints, &o.arc},
	}
	for _, s := range specs {
		p, err := factory.NewPrimitive(s.name, s.style, s.capacity)
		if err != nil {
			o.Close()
			return nil, fmt.Errorf("create %s primitive: %w", s.name, err)
		}
		p.SetEnabled(false)
		*s.dst = p
	}

	log.Info("initializing ejection angle overlay")
	return o, nil
}

// Close releases the primitives. The controller is left as it is.
func (o *Overlay) Close() {
	for _, p := range o.primitives() {
		p.Close()
	}
	o.asymptote, o.periapsis, o.arc = nil, nil, nil
}

func (o *Overlay) primitives() []Primitive {
	var ps []Primitive
	for _, p := range []Primitive{o.asymptote, o.periapsis, o.arc} {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return ps
}

// Controller returns the controller being drawn.
func (o *Overlay) Controller() *diagram.Controller {
	return o.ctrl
}

// SetStyles restyles the primitives and captions.
func (o *Overlay) SetStyles(s Styles) {
	o.styles = s
	if o.arc == nil {
		return
	}
	o.asymptote.SetStyle(s.Asymptote)
	o.periapsis.SetStyle(s.Periapsis)
	o.arc.SetStyle(s.Arc)
}

// Draw ticks the controller and pushes this frame's geometry into the
// primitives. While no suitable view is active the primitives are disabled
// and the animation is not ticked.
func (o *Overlay) Draw(now time.Time) (diagram.Frame, error) {
	if o.arc == nil {
		return diagram.Frame{}, errClosed
	}

	active := o.scene.ViewActive()
	if active != o.viewActive {
		o.log.Debug("diagram view changed", zap.Bool("active", active))
		o.viewActive = active
	}
	if !active || !o.ctrl.IsVisible() {
		o.disable()
		return o.ctrl.Frame(), nil
	}

	f := o.ctrl.Tick(now)
	g := o.ctrl.Geometry()
	if g.Empty() {
		o.disable()
		return f, nil
	}

	pushLine(o.asymptote, g.Asymptote)
	pushLine(o.periapsis, g.Periapsis)
	o.arc.SetPoints(g.Arc)
	o.arc.SetEnabled(g.ArcDrawn)
	return f, nil
}

func pushLine(p Primitive, l diagram.Line) {
	p.SetPoints([]math.Vec3{l.From, l.To})
	p.SetEnabled(l.Drawn)
}

func (o *Overlay) disable() {
	for _, p := range o.primitives() {
		p.SetEnabled(false)
	}
}

// DrawLabels draws the captions of a fully shown diagram. Each caption is
// skipped on its own when its anchor is behind the camera.
func (o *Overlay) DrawLabels(proj diagram.Projector, drawer LabelDrawer, screenHeight float32) int {
	if !o.scene.ViewActive() {
		return 0
	}
	labels, ok := o.ctrl.LabelAnchors(proj)
	if !ok {
		return 0
	}

	drawn := 0
	captions := []struct {
		anchor diagram.LabelAnchor
		text   string
		style  LabelStyle
	}{
		{labels.Periapsis, o.styles.PeriapsisCaption, o.styles.PeriapsisLabel},
		{labels.Asymptote, o.styles.AsymptoteCaption, o.styles.AsymptoteLabel},
	}
	for _, c := range captions {
		if !c.anchor.Visible {
			continue
		}
		drawer.DrawLabel(c.anchor.Rect(screenHeight), c.text, c.style)
		drawn++
	}
	return drawn
}

var errClosed = errors.New("overlay is closed")
