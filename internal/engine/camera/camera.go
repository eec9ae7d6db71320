// Package camera provides the orbit camera the diagram viewer looks through.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Projection
	FOV  float32 // Vertical field of view, radians
	Near float32
	Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        200.0,
		RotationX:       0.5,
		RotationY:       0.0,
		FOV:             math32.Pi / 4,
		Near:            1.0,
		Far:             10000.0,
		MinDistance:     10.0,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinX, cosX := math32.Sincos(c.RotationX)
	sinY, cosY := math32.Sincos(c.RotationY)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cosX * sinY,
		Y: c.Distance * sinX,
		Z: c.Distance * cosX * cosY,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}

// ProjectionMatrix returns the perspective projection for a viewport of the
// given aspect ratio (width/height).
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitOrigin centers the camera on origin and backs off far enough to frame
// lines reaching reach times its radius.
func (c *OrbitCamera) FitOrigin(origin diagram.Origin, reach float32) {
	c.Center = origin.Position

	extent := origin.Radius * reach
	c.Distance = extent / math32.Tan(c.FOV/2) * 1.2
	c.MinDistance = origin.Radius * 1.5
	if c.MaxDistance < c.Distance*4 {
		c.MaxDistance = c.Distance * 4
	}
	if c.Far < c.Distance+extent*2 {
		c.Far = (c.Distance + extent*2) * 2
	}
	c.Near = c.Distance / 1000

	c.RotationX = 0.6 // Look down at ~35 degrees
	c.RotationY = 0.0
}

// Projector returns a diagram.Projector for the current camera state and a
// viewport of width x height pixels. Screen points have a bottom-left
// origin; Depth is the distance in front of the camera, negative behind it.
func (c *OrbitCamera) Projector(width, height int) ScreenProjector {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return ScreenProjector{
		ViewProj: c.ViewProjection(aspect),
		Width:    float32(width),
		Height:   float32(height),
	}
}

// ScreenProjector maps world points to viewport pixels.
type ScreenProjector struct {
	ViewProj      math.Mat4
	Width, Height float32
}

var _ diagram.Projector = ScreenProjector{}

// WorldToScreen projects p. Points behind the camera keep their mirrored
// screen position and report a non-positive depth.
func (s ScreenProjector) WorldToScreen(p math.Vec3) diagram.ScreenPoint {
	clip := s.ViewProj.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	w := clip[3]
	if w == 0 {
		return diagram.ScreenPoint{Depth: 0}
	}
	ndcX := clip[0] / w
	ndcY := clip[1] / w
	return diagram.ScreenPoint{
		X:     (ndcX*0.5 + 0.5) * s.Width,
		Y:     (ndcY*0.5 + 0.5) * s.Height,
		Depth: w,
	}
}
