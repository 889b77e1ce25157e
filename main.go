package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/exp/rand"

	"github.com/mikenye/pixelsnake/internal/audio"
	"github.com/mikenye/pixelsnake/internal/game"
	"github.com/mikenye/pixelsnake/internal/glyph"
	"github.com/mikenye/pixelsnake/internal/logging"
	"github.com/mikenye/pixelsnake/internal/render"
)

// command line switches
var (
	debugFlag = flag.Bool("debug", false, "write a debug log to logs/pixelsnake.log")
	muteFlag  = flag.Bool("mute", false, "disable sound")
	fpsFlag   = flag.Bool("fps", false, "show TPS/FPS counter")
)

// Game adapts the game loop to ebiten
type Game struct {

	// game state, ticks on its own fixed interval
	loop *game.Loop

	// framebuffer painted by the compositor
	frame *render.Framebuffer

	// paints the framebuffer from the loop state
	compositor *render.Compositor

	// copy of the framebuffer with alpha forced opaque, handed to ebiten
	surface []byte

	// has the current framebuffer reached the screen?
	presented bool

	// wall-clock time of the previous Update
	last time.Time

	// reused buffer of keys pressed this update
	keys []ebiten.Key

	// event cues
	sound *audio.Player

	// draw TPS/FPS counter
	showFPS bool
}

// update function, ebiten calls this every tick (60 times per second)
func (g *Game) Update() error {

	// Q or ESC quits regardless of state
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// buffer every key pressed since the last update
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.loop.Push(decodeKey(k))
	}

	// advance by real elapsed time, not by ebiten ticks
	now := time.Now()
	out := g.loop.Advance(now.Sub(g.last))
	g.last = now

	g.sound.Play(out)
	return nil
}

// draw function, ebiten calls this every frame.
// the screen is not cleared between frames, so it is only written when the
// loop asked for a redraw (or the last attempt failed)
func (g *Game) Draw(screen *ebiten.Image) {
	if g.loop.TakeRedraw() {
		g.compositor.Compose(g.frame, g.loop)
		g.presented = false
	}

	if !g.presented || g.showFPS {
		if err := g.present(screen); err != nil {
			// drop the frame, the next layout will fix the size
			log.Printf("present: %v", err)
			return
		}
		g.presented = true
	}

	if g.showFPS {
		_, h := g.frame.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 0, h-16)
	}
}

// copy the framebuffer to the screen
func (g *Game) present(screen *ebiten.Image) error {
	w, h := g.frame.Size()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sw != w || sh != h {
		return fmt.Errorf("screen %dx%d, frame %dx%d: %w", sw, sh, w, h, render.ErrSizeMismatch)
	}

	// the window is opaque, whatever alpha the compositor wrote
	pix := g.frame.Pix()
	if len(g.surface) != len(pix) {
		g.surface = make([]byte, len(pix))
	}
	copy(g.surface, pix)
	for i := 3; i < len(g.surface); i += 4 {
		g.surface[i] = 0xff
	}

	screen.WritePixels(g.surface)
	return nil
}

// layout function, called by Ebiten to size window & content.
// the framebuffer follows the window and the mapping is rebuilt on redraw
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.frame.Resize(outsideWidth, outsideHeight) {
		g.loop.RequestRedraw()
	}
	return outsideWidth, outsideHeight
}

// create a new game object
func NewGame(sound *audio.Player, showFPS bool) (*Game, error) {
	text, err := glyph.NewMono()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	g := Game{
		loop:       game.NewLoop(rng),
		frame:      render.NewFramebuffer(game.MinWindowWidth, game.MinWindowHeight),
		compositor: render.NewCompositor(text),
		last:       time.Now(),
		sound:      sound,
		showFPS:    showFPS,
	}
	return &g, nil
}

// map a key to a snake direction, anything else is a plain key press
func decodeKey(k ebiten.Key) game.Direction {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return game.Up
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return game.Down
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return game.Left
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return game.Right
	}
	return game.NoDirection
}

// main function
func main() {
	flag.Parse()

	if *debugFlag {
		if f := logging.Setup(true); f != nil {
			defer f.Close()
		}
	}

	// sound is optional
	sound := &audio.Player{}
	if !*muteFlag {
		if err := sound.Init(); err != nil {
			log.Printf("audio: %v (continuing without sound)", err)
		}
		defer sound.Close()
	}

	// create new game object
	g, err := NewGame(sound, *fpsFlag)
	if err != nil {
		log.Fatal(err)
	}

	// set up game window
	ebiten.SetWindowTitle(game.WindowTitle)
	ebiten.SetWindowSize(game.MinWindowWidth, game.MinWindowHeight)
	ebiten.SetWindowSizeLimits(game.MinWindowWidth, game.MinWindowHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	// start game
	err = ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
