package ui2d

import (
	"fmt"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/overlay"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// Canvas is what a Layer and the HUD draw on. *Renderer implements it.
type Canvas interface {
	DrawRect(x, y, width, height float32, color Color)
	DrawRectOutline(x, y, width, height, thickness float32, color Color)
	DrawPolyline(points []math.Vec2, width float32, color Color)
	DrawText(x, y float32, text string, scale float32, color Color)
	MeasureText(text string, scale float32) (float32, float32)
}

var _ Canvas = (*Renderer)(nil)

// Layer owns world-space polylines and draws them projected onto the
// screen. It implements overlay.PrimitiveFactory.
type Layer struct {
	lines []*Polyline
}

var _ overlay.PrimitiveFactory = (*Layer)(nil)

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// NewPrimitive adds a disabled polyline to the layer.
func (l *Layer) NewPrimitive(name string, style overlay.Style, capacity int) (overlay.Primitive, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("primitive %q: capacity %d, need at least 2 points", name, capacity)
	}
	p := &Polyline{
		layer:  l,
		name:   name,
		style:  style,
		points: make([]math.Vec3, 0, capacity),
	}
	l.lines = append(l.lines, p)
	return p, nil
}

// Len returns the number of live polylines.
func (l *Layer) Len() int {
	return len(l.lines)
}

// Draw projects every enabled polyline through proj onto c. screenHeight
// flips proj's bottom-left origin to the canvas' top-left one. Points
// behind the camera break the line.
func (l *Layer) Draw(c Canvas, proj diagram.Projector, screenHeight float32) {
	var run []math.Vec2
	for _, p := range l.lines {
		if !p.enabled || len(p.points) < 2 {
			continue
		}
		color := FromOverlay(p.style.Color)
		run = run[:0]
		for _, w := range p.points {
			s := proj.WorldToScreen(w)
			if s.Depth <= 0 {
				if len(run) > 1 {
					c.DrawPolyline(run, p.style.Width, color)
				}
				run = run[:0]
				continue
			}
			run = append(run, math.Vec2{X: s.X, Y: screenHeight - s.Y})
		}
		if len(run) > 1 {
			c.DrawPolyline(run, p.style.Width, color)
		}
	}
}

func (l *Layer) remove(p *Polyline) {
	for i, q := range l.lines {
		if q == p {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Polyline is a world-space line strip. It implements overlay.Primitive.
type Polyline struct {
	layer   *Layer
	name    string
	style   overlay.Style
	points  []math.Vec3
	enabled bool
}

// Name returns the name the polyline was created with.
func (p *Polyline) Name() string {
	return p.name
}

// SetPoints replaces the points. The slice is copied.
func (p *Polyline) SetPoints(points []math.Vec3) {
	p.points = append(p.points[:0], points...)
}

// SetEnabled shows or hides the polyline.
func (p *Polyline) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// SetStyle changes color and width.
func (p *Polyline) SetStyle(style overlay.Style) {
	p.style = style
}

// Close removes the polyline from its layer.
func (p *Polyline) Close() {
	if p.layer != nil {
		p.layer.remove(p)
		p.layer = nil
	}
}

// Captions draws diagram captions on a canvas. It implements
// overlay.LabelDrawer.
type Captions struct {
	Canvas Canvas
	Scale  float32
}

var _ overlay.LabelDrawer = Captions{}

// DrawLabel draws text inside r, centered when the style asks for it.
func (c Captions) DrawLabel(r diagram.Rect, text string, style overlay.LabelStyle) {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	tw, th := c.Canvas.MeasureText(text, scale)
	x, y := labelOrigin(r, tw, th, style.Centered)
	c.Canvas.DrawText(x, y, text, scale, FromOverlay(style.Color))
}

// labelOrigin returns the top-left corner of a tw x th text block in r.
func labelOrigin(r diagram.Rect, tw, th float32, centered bool) (float32, float32) {
	y := r.Y + (r.H-th)/2
	if !centered {
		return r.X, y
	}
	return r.X + (r.W-tw)/2, y
}
