// Package math provides the float32 vector math used by the diagram and its renderers.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates from v to other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
	}
}

// Slerp spherically interpolates between the unit vectors v and other along
// the shorter great circle. t should be in range [0, 1].
func (v Vec3) Slerp(other Vec3, t float32) Vec3 {
	dot := Clamp(v.Dot(other), -1, 1)

	// Nearly parallel: the great circle is undefined at this precision
	if dot > 0.9995 {
		return v.Lerp(other, t).Normalize()
	}

	// Antiparallel: every great circle is equally short, rotate through
	// an arbitrary perpendicular axis.
	if dot < -0.9995 {
		axis := v.Perpendicular()
		return QuatFromAxisAngle(axis, math32.Pi*t).Rotate(v).Normalize()
	}

	theta := math32.Acos(dot) * t
	rel := other.Sub(v.Scale(dot)).Normalize()
	return v.Scale(math32.Cos(theta)).Add(rel.Scale(math32.Sin(theta)))
}

// Perpendicular returns a unit vector orthogonal to v.
func (v Vec3) Perpendicular() Vec3 {
	axis := Vec3{1, 0, 0}
	if math32.Abs(v.X) > 0.9 {
		axis = Vec3{0, 1, 0}
	}
	return v.Cross(axis).Normalize()
}

// XY returns the XY components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}
