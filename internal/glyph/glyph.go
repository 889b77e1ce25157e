// Package glyph rasterizes text into coverage bitmaps for the compositor.
package glyph

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mikenye/pixelsnake/internal/render"
)

// Rasterizer renders strings with a single TrueType font. Faces are built
// lazily per scale and kept for reuse.
type Rasterizer struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// New parses ttf and returns a rasterizer for it.
func New(ttf []byte) (*Rasterizer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Rasterizer{font: f, faces: make(map[float64]font.Face)}, nil
}

// NewMono returns a rasterizer using the bundled Go Mono font.
func NewMono() (*Rasterizer, error) {
	return New(gomono.TTF)
}

// Rasterize lays text out on a single line. The bitmap is as wide as the
// advance of the string and as tall as ascent plus descent at this scale.
func (r *Rasterizer) Rasterize(text string, scale float64) (render.Coverage, error) {
	face, err := r.face(scale)
	if err != nil {
		return render.Coverage{}, err
	}

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width <= 0 || height <= 0 {
		return render.Coverage{}, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)

	return render.Coverage{Width: width, Height: height, Pix: dst.Pix}, nil
}

// Close releases every cached face.
func (r *Rasterizer) Close() error {
	for scale, face := range r.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(r.faces, scale)
	}
	return nil
}

func (r *Rasterizer) face(scale float64) (font.Face, error) {
	if face, ok := r.faces[scale]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face at scale %v: %w", scale, err)
	}
	r.faces[scale] = face
	return face, nil
}
