package termview

import (
	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/overlay"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2

// View is an orthographic look down the world Z axis onto the XY plane.
type View struct {
	Center math.Vec3
	Scale  float32 // world units per column
	W, H   int
}

// Fit centers v on origin and scales it so that lines reach times the
// radius long fit on screen with a margin.
func Fit(origin diagram.Origin, reach float32, w, h int) View {
	v := View{Center: origin.Position, W: w, H: h}
	half := min(float32(w)/2, float32(h)*cellAspect/2) - 2
	if half < 1 {
		half = 1
	}
	v.Scale = origin.Radius * reach / half
	return v
}

// Zoom scales the view; factors above 1 zoom in.
func (v *View) Zoom(factor float32) {
	if factor > 0 {
		v.Scale /= factor
	}
}

// Pan moves the center by whole cells.
func (v *View) Pan(cols, rows int) {
	v.Center.X += float32(cols) * v.Scale
	v.Center.Y -= float32(rows) * v.Scale * cellAspect
}

// ToCell maps a world point to fractional grid coordinates.
func (v View) ToCell(p math.Vec3) math.Vec2 {
	return math.Vec2{
		X: float32(v.W)/2 + (p.X-v.Center.X)/v.Scale,
		Y: float32(v.H)/2 - (p.Y-v.Center.Y)/(v.Scale*cellAspect),
	}
}

// WorldToScreen implements diagram.Projector in cell units with a
// bottom-left origin. Everything is in front of an orthographic view.
func (v View) WorldToScreen(p math.Vec3) diagram.ScreenPoint {
	c := v.ToCell(p)
	return diagram.ScreenPoint{X: c.X, Y: float32(v.H) - c.Y, Depth: 1}
}

// Body is drawn for the origin.
var bodyColor = overlay.Color{R: 0.5, G: 0.5, B: 0.55, A: 1}

// Rasterize draws the origin body and the geometry onto a new grid.
func Rasterize(v View, origin diagram.Origin, g diagram.Geometry, s overlay.Styles) *Grid {
	grid := NewGrid(v.W, v.H)
	drawBody(grid, v, origin)

	if g.ArcDrawn {
		grid.Polyline(project(v, g.Arc), s.Arc.Color)
	}
	for _, l := range []struct {
		line  diagram.Line
		color overlay.Color
	}{
		{g.Periapsis, s.Periapsis.Color},
		{g.Asymptote, s.Asymptote.Color},
	} {
		if l.line.Drawn {
			grid.Line(v.ToCell(l.line.From), v.ToCell(l.line.To), l.color)
		}
	}
	return grid
}

// DrawLabels writes the captions centered on their anchors.
func DrawLabels(grid *Grid, labels diagram.Labels, s overlay.Styles) {
	for _, l := range []struct {
		anchor diagram.LabelAnchor
		text   string
		style  overlay.LabelStyle
	}{
		{labels.Periapsis, s.PeriapsisCaption, s.PeriapsisLabel},
		{labels.Asymptote, s.AsymptoteCaption, s.AsymptoteLabel},
	} {
		if !l.anchor.Visible {
			continue
		}
		col := int(l.anchor.Screen.X)
		if l.style.Centered {
			col -= len([]rune(l.text)) / 2
		}
		row := grid.H - int(l.anchor.Screen.Y+0.5)
		grid.Text(col, row, l.text, l.style.Color)
	}
}

func drawBody(grid *Grid, v View, origin diagram.Origin) {
	if origin.Radius <= 0 {
		return
	}
	c := v.ToCell(origin.Position)
	rx := origin.Radius / v.Scale
	ry := rx / cellAspect
	for y := int(c.Y - ry - 1); y <= int(c.Y+ry+1); y++ {
		for x := int(c.X - rx - 1); x <= int(c.X+rx+1); x++ {
			nx := (float32(x) - c.X) / rx
			ny := (float32(y) - c.Y) / ry
			if nx*nx+ny*ny <= 1 {
				grid.Set(x, y, '.', bodyColor)
			}
		}
	}
	grid.Set(int(c.X+0.5), int(c.Y+0.5), 'o', bodyColor)
}

func project(v View, pts []math.Vec3) []math.Vec2 {
	out := make([]math.Vec2, len(pts))
	for i, p := range pts {
		out[i] = v.ToCell(p)
	}
	return out
}
