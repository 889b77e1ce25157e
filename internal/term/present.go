// Package term presents the framebuffer on a terminal and decodes terminal
// key presses.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/pixelsnake/internal/render"
)

// upper half block: foreground paints the top pixel, background the bottom
const halfBlock = '▀'

// Presenter scales a framebuffer down onto a tcell screen. Each terminal
// cell shows two vertically stacked pixels. The bottom row is kept for a
// plain text status line, since small overlay text does not survive the
// downscale.
type Presenter struct {
	screen tcell.Screen
	status string
}

func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// SetStatus sets the text shown on the bottom row.
func (p *Presenter) SetStatus(s string) { p.status = s }

// Present paints fb onto the screen, keeping its aspect ratio and centring
// it. It fails with render.ErrSizeMismatch if the terminal is too small to
// show anything.
func (p *Presenter) Present(fb *render.Framebuffer) error {
	cols, rows := p.screen.Size()
	fw, fh := fb.Size()

	// virtual pixel area, bottom row reserved for status
	vw, vh := cols, (rows-1)*2
	if vw <= 0 || vh <= 0 || fw <= 0 || fh <= 0 {
		return fmt.Errorf("terminal %dx%d: %w", cols, rows, render.ErrSizeMismatch)
	}

	// uniform scale so the square field stays square
	outW, outH := vw, fh*vw/fw
	if outH > vh {
		outW, outH = fw*vh/fh, vh
	}
	if outW == 0 || outH == 0 {
		return fmt.Errorf("terminal %dx%d: %w", cols, rows, render.ErrSizeMismatch)
	}
	offX, offY := (vw-outW)/2, (vh-outH)/2

	sample := func(vx, vy int) color.RGBA {
		vx, vy = vx-offX, vy-offY
		if vx < 0 || vy < 0 || vx >= outW || vy >= outH {
			return color.RGBA{}
		}
		return brightest(fb,
			vx*fw/outW, vy*fh/outH,
			(vx+1)*fw/outW, (vy+1)*fh/outH)
	}

	p.screen.Clear()
	for cy := 0; cy < rows-1; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := sample(cx, cy*2)
			bottom := sample(cx, cy*2+1)
			if isBlack(top) && isBlack(bottom) {
				continue
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			p.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range []rune(p.status) {
		if i >= cols {
			break
		}
		p.screen.SetContent(i, rows-1, r, nil, statusStyle)
	}

	p.screen.Show()
	return nil
}

// brightest returns the brightest pixel in [x0,x1) x [y0,y1), so thin lines
// and small cells stay visible after scaling down.
func brightest(fb *render.Framebuffer, x0, y0, x1, y1 int) color.RGBA {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var best color.RGBA
	bestLum := -1
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := fb.At(x, y)
			if lum := int(c.R) + int(c.G) + int(c.B); lum > bestLum {
				best, bestLum = c, lum
			}
		}
	}
	return best
}

func isBlack(c color.RGBA) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// alpha is ignored, a terminal cell is always opaque
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
