package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedCapture(dir string) *Capture {
	c := New(dir, "angle")
	c.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 5, 250e6, time.UTC) }
	return c
}

func TestFilename(t *testing.T) {
	c := fixedCapture("shots")

	if got, want := c.Filename(""), filepath.Join("shots", "angle_2026-03-01_12-30-05.250.png"); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
	if got, want := c.Filename("full-picture"), filepath.Join("shots", "angle_2026-03-01_12-30-05.250_full-picture.png"); got != want {
		t.Errorf("Filename(tag) = %q, want %q", got, want)
	}
}

func TestFromPixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	c := fixedCapture(dir)

	// 1x2 image: bottom row red, top row blue (GL order is bottom first).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := c.FromPixels(pixels, 1, 2, "")
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA)
	if top.B != 255 || bottom.R != 255 {
		t.Errorf("top = %v, bottom = %v; want blue over red", top, bottom)
	}
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	if _, err := fixedCapture(t.TempDir()).FromPixels(make([]byte, 3), 1, 1, ""); err == nil {
		t.Error("expected size mismatch error")
	}
}
