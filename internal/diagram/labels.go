package diagram

import "github.com/Faultbox/ejection-angle/pkg/math"

// ScreenPoint is a projected point in pixels with the origin at the bottom
// left of the viewport. Depth is positive in front of the camera.
type ScreenPoint struct {
	X, Y  float32
	Depth float32
}

// Projector maps world points to the screen.
type Projector interface {
	WorldToScreen(p math.Vec3) ScreenPoint
}

// LabelAnchor is where a caption is placed.
type LabelAnchor struct {
	World   math.Vec3
	Screen  ScreenPoint
	Visible bool
}

// Labels holds the anchors of both captions.
type Labels struct {
	Asymptote LabelAnchor
	Periapsis LabelAnchor
}

// Label box size in pixels, centred on the anchor.
const (
	LabelWidth  = 100
	LabelHeight = 30
)

// Rect is a screen rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// ProjectLabels places an anchor at dist along each unit direction from
// center. An anchor behind the camera is not visible; the other one is
// unaffected.
func ProjectLabels(proj Projector, center, asymptote, periapsis math.Vec3, dist float32) Labels {
	return Labels{
		Asymptote: projectAnchor(proj, center.Add(asymptote.Scale(dist))),
		Periapsis: projectAnchor(proj, center.Add(periapsis.Scale(dist))),
	}
}

func projectAnchor(proj Projector, world math.Vec3) LabelAnchor {
	sp := proj.WorldToScreen(world)
	return LabelAnchor{World: world, Screen: sp, Visible: sp.Depth > 0}
}

// Rect returns the caption box for a viewport of the given height.
func (a LabelAnchor) Rect(screenHeight float32) Rect {
	return Rect{
		X: a.Screen.X - LabelWidth/2,
		Y: screenHeight - a.Screen.Y - LabelHeight/2,
		W: LabelWidth,
		H: LabelHeight,
	}
}
