package render

import "image/color"

// Coverage is a rasterized run of text. Each value is the ink coverage of a
// pixel, 0 for none through 255 for full.
type Coverage struct {
	Width, Height int
	Pix           []uint8
}

// At returns the coverage at (x, y), which must be inside the bitmap.
func (c Coverage) At(x, y int) uint8 {
	return c.Pix[y*c.Width+x]
}

// Rasterizer turns a string into a coverage bitmap. Scale is the pixel height
// of the font.
type Rasterizer interface {
	Rasterize(text string, scale float64) (Coverage, error)
}

// BlitCoverage copies cov into fb with its top left corner at (x, y). Each
// coverage value becomes a grey pixel with zero alpha; background pixels of
// the bitmap are written too, so text sits on a black box.
func BlitCoverage(fb *Framebuffer, cov Coverage, x, y int) {
	for cy := 0; cy < cov.Height; cy++ {
		for cx := 0; cx < cov.Width; cx++ {
			v := cov.At(cx, cy)
			fb.SetPixel(x+cx, y+cy, color.RGBA{v, v, v, 0})
		}
	}
}
