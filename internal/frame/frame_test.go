package frame

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/ejection-angle/pkg/math"
)

func near(a, b math.Vec3) bool {
	return a.Distance(b) < 1e-4
}

func TestIdentity(t *testing.T) {
	v := math.Vec3{X: 1, Y: 2, Z: 3}
	if got := Identity().ToWorld(v); !near(got, v) {
		t.Errorf("Identity().ToWorld(%v) = %v", v, got)
	}
}

func TestZUpToYUp(t *testing.T) {
	got := ZUpToYUp().ToWorld(math.Vec3{Z: 1})
	want := math.Vec3{Y: 1}
	if !near(got, want) {
		t.Errorf("ZUpToYUp up axis = %v, want %v", got, want)
	}
}

func TestRotation(t *testing.T) {
	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(gomath.Pi/2))
	got := Identity().Rotation(q).ToWorld(math.Vec3{Z: 1})
	want := math.Vec3{X: 1}
	if !near(got, want) {
		t.Errorf("rotated = %v, want %v", got, want)
	}
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"identity", false},
		{"zup", false},
		{"ecliptic", true},
	}
	for _, tt := range tests {
		_, err := Named(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("Named(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
