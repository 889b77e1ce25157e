package render

import (
	"image/color"

	"github.com/mikenye/pixelsnake/internal/game"
)

// colours used by the game
var (
	BorderColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	FoodColor   = color.RGBA{0xff, 0x00, 0x00, 0x00}
	BodyColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	HeadColor   = color.RGBA{0xf7, 0xe8, 0x72, 0xff}
)

// gap between neighbouring cells, so segments read as separate blocks
const cellGutter = 3

// FillCell draws a cell-sized square whose bottom left corner is (x, y).
// The square grows right and upward from that corner.
func FillCell(fb *Framebuffer, x, y, blockSize int, c color.RGBA) {
	side := blockSize - cellGutter
	for dy := 0; dy < side; dy++ {
		for dx := 0; dx < side; dx++ {
			fb.SetPixel(x+dx, y-dy, c)
		}
	}
}

// DrawBorder draws a one pixel frame around the playing field, centred on the
// framebuffer. If any edge would land outside the framebuffer nothing is
// drawn.
func DrawBorder(fb *Framebuffer, w *game.World) {
	viewW, viewH := fb.Size()
	halfW := w.Width * w.BlockSize / 2
	halfH := w.Height * w.BlockSize / 2

	left := viewW/2 - halfW - 2
	right := viewW/2 + halfW - 2
	top := viewH/2 - halfH + 2
	bottom := viewH/2 + halfH + 2

	inX := func(x int) bool { return x >= 0 && x < viewW }
	inY := func(y int) bool { return y >= 0 && y < viewH }
	if !inX(left) || !inX(right) || !inY(top) || !inY(bottom) {
		return
	}

	for x := left; x < right; x++ {
		fb.SetPixel(x, top, BorderColor)
		fb.SetPixel(x, bottom, BorderColor)
	}
	for y := top; y < bottom; y++ {
		fb.SetPixel(left, y, BorderColor)
		fb.SetPixel(right, y, BorderColor)
	}
}

// DrawFood draws the food cell.
func DrawFood(fb *Framebuffer, m Mapper, w *game.World) {
	x, y := m.ToPixel(w.Food)
	FillCell(fb, x, y, w.BlockSize, FoodColor)
}

// DrawSnake draws every segment whose anchor maps inside the viewport. The
// head gets its own colour.
func DrawSnake(fb *Framebuffer, m Mapper, s *game.Snake, blockSize int) {
	for i, p := range s.Body() {
		x, y := m.ToPixel(p)
		if !m.InView(x, y) {
			continue
		}
		c := BodyColor
		if i == 0 {
			c = HeadColor
		}
		FillCell(fb, x, y, blockSize, c)
	}
}
