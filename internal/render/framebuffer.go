// Package render paints game state into a raw RGBA framebuffer.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrSizeMismatch is returned by presenters when the framebuffer and the
// surface it is presented to disagree on size, usually during a resize.
var ErrSizeMismatch = errors.New("framebuffer size does not match surface")

// Framebuffer is an owned RGBA pixel buffer. All drawing goes through
// SetPixel, which drops writes that fall outside the buffer.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Resize reallocates the buffer if the size changed. Contents are lost.
func (fb *Framebuffer) Resize(width, height int) bool {
	if w, h := fb.Size(); w == width && h == height {
		return false
	}
	fb.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return true
}

func (fb *Framebuffer) Size() (width, height int) {
	b := fb.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear sets every byte, alpha included, to zero.
func (fb *Framebuffer) Clear() {
	clear(fb.img.Pix)
}

// SetPixel writes c at (x, y). Out of range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	w, h := fb.Size()
	if x >= w || y >= h {
		return
	}
	i := fb.img.PixOffset(x, y)
	p := fb.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// At returns the pixel at (x, y), or zero outside the buffer.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	return fb.img.RGBAAt(x, y)
}

// Pix returns the raw RGBA bytes, row major, 4 bytes per pixel.
func (fb *Framebuffer) Pix() []byte { return fb.img.Pix }

// Image exposes the buffer as an image for presenters and tests.
func (fb *Framebuffer) Image() *image.RGBA { return fb.img }
