// Package termview draws the diagram on a character grid and runs it in a
// terminal through tcell.
package termview

import (
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/ejection-angle/internal/overlay"
	"github.com/Faultbox/ejection-angle/pkg/math"
)

// Cell is one character of the grid. A zero Rune is empty.
type Cell struct {
	Rune  rune
	Color overlay.Color
}

// Grid is a W x H character raster, row 0 at the top.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid creates an empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]Cell, max(w, 0)*max(h, 0))}
}

// At returns the cell at column x, row y. Outside the grid it is empty.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return Cell{}
	}
	return g.cells[y*g.W+x]
}

// Set writes a cell, ignoring positions outside the grid.
func (g *Grid) Set(x, y int, r rune, c overlay.Color) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.cells[y*g.W+x] = Cell{Rune: r, Color: c}
}

// Text writes s starting at column x.
func (g *Grid) Text(x, y int, s string, c overlay.Color) {
	for _, r := range s {
		g.Set(x, y, r, c)
		x++
	}
}

// Line draws from a to b in cell coordinates with a glyph matching the
// slope.
func (g *Grid) Line(a, b math.Vec2, c overlay.Color) {
	x0, y0 := int(math32.Round(a.X)), int(math32.Round(a.Y))
	x1, y1 := int(math32.Round(b.X)), int(math32.Round(b.Y))
	r := slopeGlyph(b.X-a.X, b.Y-a.Y)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		g.Set(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Polyline draws connected segments.
func (g *Grid) Polyline(pts []math.Vec2, c overlay.Color) {
	for i := 1; i < len(pts); i++ {
		g.Line(pts[i-1], pts[i], c)
	}
}

// String returns the runes row by row, empty cells as spaces.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			r := g.At(x, y).Rune
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		if y < g.H-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// slopeGlyph picks a character for a segment going dx columns right and dy
// rows down.
func slopeGlyph(dx, dy float32) rune {
	ax, ay := math32.Abs(dx), math32.Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return '*'
	case ay*2 <= ax:
		return '-'
	case ax*2 <= ay:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
