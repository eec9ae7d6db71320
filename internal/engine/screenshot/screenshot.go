// Package screenshot saves the viewer's framebuffer as PNG.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Capture writes timestamped PNG files into a directory.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// New creates a capture writing to outputDir, which is created on demand.
func New(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// ReadFramebuffer reads the current GL back buffer as RGBA rows, bottom
// row first.
func ReadFramebuffer(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

// FromPixels saves bottom-up RGBA pixel data, as returned by
// ReadFramebuffer. tag is appended to the file name when not empty.
func (c *Capture) FromPixels(pixels []byte, width, height int, tag string) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	return c.FromImage(flip(pixels, width, height), tag)
}

// FromImage saves img.
func (c *Capture) FromImage(img image.Image, tag string) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename(tag)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// Filename returns the path the next capture would be written to.
func (c *Capture) Filename(tag string) string {
	name := c.prefix + "_" + c.now().Format("2006-01-02_15-04-05.000")
	if tag != "" {
		name += "_" + tag
	}
	name += ".png"
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}

// flip copies bottom-up rows into a top-down image.
func flip(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img
}
