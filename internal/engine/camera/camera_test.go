package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

const tolerance = 1e-3

func approx(a, b float32) bool {
	return math32.Abs(a-b) < tolerance
}

// frontCamera sits on +Z looking at the origin.
func frontCamera() *OrbitCamera {
	c := NewOrbitCamera()
	c.Distance = 100
	c.RotationX = 0
	c.RotationY = 0
	return c
}

func TestPosition(t *testing.T) {
	c := frontCamera()
	c.Center = math.Vec3{X: 5, Y: 0, Z: 0}

	pos := c.Position()
	if !approx(pos.X, 5) || !approx(pos.Y, 0) || !approx(pos.Z, 100) {
		t.Errorf("Position() = %v, want (5, 0, 100)", pos)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := frontCamera()
	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -100000)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %v, want %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := frontCamera()
	c.HandleZoom(100)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestProjectorCenter(t *testing.T) {
	p := frontCamera().Projector(800, 600)

	s := p.WorldToScreen(math.Vec3{})
	if !approx(s.X, 400) || !approx(s.Y, 300) {
		t.Errorf("center projects to (%v, %v), want (400, 300)", s.X, s.Y)
	}
	if !approx(s.Depth, 100) {
		t.Errorf("depth = %v, want 100", s.Depth)
	}
}

func TestProjectorAxes(t *testing.T) {
	p := frontCamera().Projector(800, 600)

	right := p.WorldToScreen(math.Vec3{X: 10})
	if right.X <= 400 || !approx(right.Y, 300) {
		t.Errorf("+X projects to (%v, %v), want right of center", right.X, right.Y)
	}

	up := p.WorldToScreen(math.Vec3{Y: 10})
	if up.Y <= 300 || !approx(up.X, 400) {
		t.Errorf("+Y projects to (%v, %v), want above center (bottom-left origin)", up.X, up.Y)
	}
}

func TestProjectorBehindCamera(t *testing.T) {
	p := frontCamera().Projector(800, 600)

	s := p.WorldToScreen(math.Vec3{Z: 200})
	if s.Depth >= 0 {
		t.Errorf("depth = %v, want negative behind the camera", s.Depth)
	}
}

func TestProjectorDrivesLabels(t *testing.T) {
	c := frontCamera()
	c.Distance = 1000

	labels := diagram.ProjectLabels(c.Projector(800, 600),
		math.Vec3{}, math.Vec3{X: 1}, math.Vec3{Y: 1}, 50)
	if !labels.Asymptote.Visible || !labels.Periapsis.Visible {
		t.Fatalf("labels in front of the camera should be visible: %+v", labels)
	}
	if labels.Asymptote.Screen.X <= 400 {
		t.Errorf("asymptote label at x=%v, want right of center", labels.Asymptote.Screen.X)
	}
}

func TestFitOrigin(t *testing.T) {
	c := NewOrbitCamera()
	origin := diagram.Origin{Position: math.Vec3{X: 1000, Y: 0, Z: -50}, Radius: 600}

	c.FitOrigin(origin, 5)

	if c.Center != origin.Position {
		t.Errorf("Center = %v, want %v", c.Center, origin.Position)
	}
	if c.Distance <= origin.Radius*5 {
		t.Errorf("Distance = %v, want beyond the line reach %v", c.Distance, origin.Radius*5)
	}
	if c.Far <= c.Distance {
		t.Errorf("Far plane %v does not reach past the camera distance %v", c.Far, c.Distance)
	}
	if c.Distance < c.MinDistance || c.Distance > c.MaxDistance {
		t.Errorf("Distance %v outside [%v, %v]", c.Distance, c.MinDistance, c.MaxDistance)
	}
}
