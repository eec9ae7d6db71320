package ui2d

import "github.com/Faultbox/ejection-angle/pkg/math"

// Vertex layouts of the two draw lists.
const (
	solidStride = 7 // x, y, z, r, g, b, a
	textStride  = 9 // x, y, z, u, v, r, g, b, a
)

// batch accumulates the triangles of one UI frame.
type batch struct {
	solid []float32
	text  []float32
}

func (b *batch) reset() {
	b.solid = b.solid[:0]
	b.text = b.text[:0]
}

func (b *batch) addTriangle(p0, p1, p2 math.Vec2, c Color) {
	b.solid = append(b.solid,
		p0.X, p0.Y, 0, c.R, c.G, c.B, c.A,
		p1.X, p1.Y, 0, c.R, c.G, c.B, c.A,
		p2.X, p2.Y, 0, c.R, c.G, c.B, c.A,
	)
}

// addQuad adds a solid color axis-aligned quad.
func (b *batch) addQuad(x, y, w, h float32, c Color) {
	p0 := math.Vec2{X: x, Y: y}
	p1 := math.Vec2{X: x + w, Y: y}
	p2 := math.Vec2{X: x + w, Y: y + h}
	p3 := math.Vec2{X: x, Y: y + h}
	b.addTriangle(p0, p1, p2, c)
	b.addTriangle(p0, p2, p3, c)
}

// addTexturedQuad adds a textured quad to the text list.
func (b *batch) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c Color) {
	b.text = append(b.text,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
	)
	b.text = append(b.text,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// addPolyline adds each segment of pts as a quad width pixels thick.
// Zero-length segments are skipped.
func (b *batch) addPolyline(pts []math.Vec2, width float32, c Color) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		from, to := pts[i-1], pts[i]
		dir := to.Sub(from)
		if dir.Length() == 0 {
			continue
		}
		n := dir.Normalize().Perp().Scale(half)
		b.addTriangle(from.Add(n), to.Add(n), to.Sub(n), c)
		b.addTriangle(from.Add(n), to.Sub(n), from.Sub(n), c)
	}
}
