package ui2d

import (
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func cellAlpha(a *atlas, r rune) int {
	sum := 0
	c := a.cell(r)
	for y := c.Min.Y; y < c.Max.Y; y++ {
		for x := c.Min.X; x < c.Max.X; x++ {
			sum += int(a.img.RGBAAt(x, y).A)
		}
	}
	return sum
}

func TestBuildAtlas(t *testing.T) {
	a := buildAtlas(basicfont.Face7x13)

	w, h := a.GlyphSize()
	if w != 7 || h != 13 {
		t.Errorf("GlyphSize() = %dx%d, want 7x13", w, h)
	}
	if a.img.Bounds() != image.Rect(0, 0, 16*7, 6*13) {
		t.Errorf("atlas bounds = %v", a.img.Bounds())
	}
	if cellAlpha(a, ' ') != 0 {
		t.Error("space glyph should be empty")
	}
	if cellAlpha(a, 'A') == 0 {
		t.Error("'A' glyph should have coverage")
	}
	if cellAlpha(a, '~') == 0 {
		t.Error("last glyph '~' should have coverage")
	}
}

func TestGetGlyphUV(t *testing.T) {
	a := buildAtlas(basicfont.Face7x13)

	u0, v0, u1, v1 := a.GetGlyphUV(' ')
	if u0 != 0 || v0 != 0 {
		t.Errorf("space UV starts at (%v, %v), want (0, 0)", u0, v0)
	}
	if u1 != 1.0/16 || v1 != 1.0/6 {
		t.Errorf("space UV ends at (%v, %v), want (1/16, 1/6)", u1, v1)
	}

	q0, qv0, _, _ := a.GetGlyphUV('?')
	f0, fv0, _, _ := a.GetGlyphUV('é')
	if q0 != f0 || qv0 != fv0 {
		t.Error("runes outside the atlas should map to '?'")
	}
}

func TestMeasureText(t *testing.T) {
	a := buildAtlas(basicfont.Face7x13)

	tests := []struct {
		text  string
		scale float32
		w, h  float32
	}{
		{"", 1, 0, 0},
		{"Burn", 1, 28, 13},
		{"Burn", 2, 56, 26},
		{"ab\nlonger", 1, 42, 26},
	}
	for _, tt := range tests {
		w, h := a.MeasureText(tt.text, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("MeasureText(%q, %v) = %vx%v, want %vx%v", tt.text, tt.scale, w, h, tt.w, tt.h)
		}
	}
}
