package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Perp(t *testing.T) {
	got := Vec2{1, 0}.Perp()
	want := Vec2{0, 1}
	if got != want {
		t.Errorf("Vec2.Perp() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if !approx(n.Length(), 1) {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", n.Length())
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", zero)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	nan := float32(math.NaN())
	if (Vec3{0, nan, 0}).IsFinite() {
		t.Error("NaN component not detected")
	}
	inf := float32(math.Inf(1))
	if (Vec3{inf, 0, 0}).IsFinite() {
		t.Error("Inf component not detected")
	}
}

func TestVec3Slerp(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	if got := a.Slerp(b, 0); !approx(got.Distance(a), 0) {
		t.Errorf("Slerp at t=0 = %v, want %v", got, a)
	}
	if got := a.Slerp(b, 1); !approx(got.Distance(b), 0) {
		t.Errorf("Slerp at t=1 = %v, want %v", got, b)
	}

	half := a.Slerp(b, 0.5)
	s := float32(math.Sqrt(0.5))
	if !approx(half.X, s) || !approx(half.Y, s) || !approx(half.Z, 0) {
		t.Errorf("Slerp at t=0.5 = %v, want (%v, %v, 0)", half, s, s)
	}
}

func TestVec3SlerpUnitLength(t *testing.T) {
	pairs := []struct {
		name string
		a, b Vec3
	}{
		{"orthogonal", Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"obtuse", Vec3{1, 0, 0}, Vec3{-1, 1, 0}.Normalize()},
		{"skew", Vec3{1, 2, 3}.Normalize(), Vec3{-3, 0.5, 2}.Normalize()},
		{"nearly parallel", Vec3{1, 0, 0}, Vec3{1, 0.001, 0}.Normalize()},
		{"identical", Vec3{0, 0, 1}, Vec3{0, 0, 1}},
		{"antiparallel", Vec3{0, 1, 0}, Vec3{0, -1, 0}},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				tt := float32(i) / 20
				l := p.a.Slerp(p.b, tt).Length()
				if math.Abs(float64(l-1)) > 1e-3 {
					t.Fatalf("Slerp(t=%v).Length() = %v, want 1", tt, l)
				}
			}
			if end := p.a.Slerp(p.b, 1); end.Distance(p.b) > 1e-3 {
				t.Errorf("Slerp(t=1) = %v, want %v", end, p.b)
			}
		})
	}
}

func TestVec3SlerpConstantAngularSpeed(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 0, 1}
	prev := a
	var step float32
	for i := 1; i <= 8; i++ {
		cur := a.Slerp(b, float32(i)/8)
		d := cur.Distance(prev)
		if i > 1 && !approx(d, step) {
			t.Fatalf("chord %d = %v, want %v", i, d, step)
		}
		step = d
		prev = cur
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1e9, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(50, 0, 0.5); got != 25 {
		t.Errorf("Lerp(50, 0, 0.5) = %v, want 25", got)
	}
}
