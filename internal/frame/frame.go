// Package frame converts directions between the diagram's reference frame
// and the rendering world frame.
package frame

import (
	"fmt"

	"github.com/Faultbox/ejection-angle/pkg/math"
)

// Converter maps reference-frame directions into the world frame.
type Converter struct {
	swizzle  [3]int
	rotation math.Quat
}

// Identity returns a converter that leaves directions unchanged.
func Identity() Converter {
	return Converter{swizzle: [3]int{0, 1, 2}, rotation: math.QuatIdentity()}
}

// ZUpToYUp maps a right-handed Z-up reference frame onto a Y-up world by
// exchanging the Y and Z axes, as planetarium frames are stored.
func ZUpToYUp() Converter {
	return Converter{swizzle: [3]int{0, 2, 1}, rotation: math.QuatIdentity()}
}

// Rotation returns a converter applying q after the axis order of c.
func (c Converter) Rotation(q math.Quat) Converter {
	c.rotation = q.Normalize().Mul(c.rotation)
	return c
}

// Named returns the converter registered under name.
func Named(name string) (Converter, error) {
	switch name {
	case "", "identity":
		return Identity(), nil
	case "zup", "z-up":
		return ZUpToYUp(), nil
	}
	return Converter{}, fmt.Errorf("unknown reference frame %q", name)
}

// ToWorld converts a direction into the world frame.
func (c Converter) ToWorld(dir math.Vec3) math.Vec3 {
	in := [3]float32{dir.X, dir.Y, dir.Z}
	out := math.Vec3{X: in[c.swizzle[0]], Y: in[c.swizzle[1]], Z: in[c.swizzle[2]]}
	return c.rotation.Rotate(out)
}
