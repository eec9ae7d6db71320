package ui2d

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is baked into the atlas; anything else renders as '?'.
const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasCols    = 16
	fallbackRune = '?'
)

// atlas is a grid of fixed-size glyph cells rendered white on transparent.
type atlas struct {
	img          *image.RGBA
	cellW, cellH int
}

func buildAtlas(face *basicfont.Face) *atlas {
	count := int(lastGlyph - firstGlyph + 1)
	rows := (count + atlasCols - 1) / atlasCols

	a := &atlas{cellW: face.Advance, cellH: face.Height}
	a.img = image.NewRGBA(image.Rect(0, 0, atlasCols*a.cellW, rows*a.cellH))

	d := font.Drawer{Dst: a.img, Src: image.White, Face: face}
	for i := 0; i < count; i++ {
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*a.cellW, row*a.cellH+face.Ascent)
		d.DrawString(string(rune(firstGlyph + i)))
	}
	return a
}

// cell returns the atlas cell of r.
func (a *atlas) cell(r rune) image.Rectangle {
	if r < firstGlyph || r > lastGlyph {
		r = fallbackRune
	}
	i := int(r - firstGlyph)
	x, y := (i%atlasCols)*a.cellW, (i/atlasCols)*a.cellH
	return image.Rect(x, y, x+a.cellW, y+a.cellH)
}

// GlyphSize returns the size of one glyph cell in pixels.
func (a *atlas) GlyphSize() (int, int) {
	return a.cellW, a.cellH
}

// GetGlyphUV returns the texture coordinates of r.
func (a *atlas) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	c := a.cell(r)
	w, h := float32(a.img.Bounds().Dx()), float32(a.img.Bounds().Dy())
	return float32(c.Min.X) / w, float32(c.Min.Y) / h, float32(c.Max.X) / w, float32(c.Max.Y) / h
}

// MeasureText returns the size of text drawn at scale. Lines are split on
// '\n'.
func (a *atlas) MeasureText(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, cols, widest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		if cols > widest {
			widest = cols
		}
	}
	return float32(widest*a.cellW) * scale, float32(lines*a.cellH) * scale
}

// Font is the 7x13 fixed bitmap font uploaded as a texture.
type Font struct {
	*atlas
	texture uint32
}

// NewFont builds the glyph atlas and uploads it. Requires a current GL
// context.
func NewFont() (*Font, error) {
	f := &Font{atlas: buildAtlas(basicfont.Face7x13)}

	b := f.img.Bounds()
	gl.GenTextures(1, &f.texture)
	if f.texture == 0 {
		return nil, errors.New("create font texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&f.img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f, nil
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close releases the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
