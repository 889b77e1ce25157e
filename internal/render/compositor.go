package render

import (
	"fmt"
	"log"

	"github.com/mikenye/pixelsnake/internal/game"
)

// text overlay settings
const (
	ScoreScale = 20
	DeathScale = 30

	DeathMessage = "You died! press any key to try again..."
)

// Compositor repaints a whole frame from the committed game state.
type Compositor struct {
	text Rasterizer
}

// NewCompositor creates a compositor. A nil rasterizer disables text.
func NewCompositor(text Rasterizer) *Compositor {
	return &Compositor{text: text}
}

// Compose clears fb and paints the field, food, snake and text overlays. The
// pixel mapping is taken from the framebuffer's current size.
func (c *Compositor) Compose(fb *Framebuffer, l *game.Loop) {
	fb.Clear()

	world := l.World()
	viewW, viewH := fb.Size()
	m := NewMapper(viewW, viewH, world.BlockSize)

	DrawBorder(fb, world)
	DrawFood(fb, m, world)
	DrawSnake(fb, m, l.Snake(), world.BlockSize)

	c.printText(fb, fmt.Sprintf("score: %d", l.Score()), ScoreScale, 0, 0)
	if l.Dead() {
		c.printText(fb, DeathMessage, DeathScale, viewW/8, viewH/2)
	}
}

func (c *Compositor) printText(fb *Framebuffer, msg string, scale float64, x, y int) {
	if c.text == nil {
		return
	}
	cov, err := c.text.Rasterize(msg, scale)
	if err != nil {
		log.Printf("render: rasterize %q: %v", msg, err)
		return
	}
	BlitCoverage(fb, cov, x, y)
}
