package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/mikenye/pixelsnake/internal/audio"
	"github.com/mikenye/pixelsnake/internal/game"
	"github.com/mikenye/pixelsnake/internal/glyph"
	"github.com/mikenye/pixelsnake/internal/logging"
	"github.com/mikenye/pixelsnake/internal/render"
	"github.com/mikenye/pixelsnake/internal/term"
)

// how often the loop is advanced
const frameInterval = 16 * time.Millisecond

var (
	debugFlag = flag.Bool("debug", false, "write a debug log to logs/pixelsnake.log")
	muteFlag  = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	// logs go to a file or nowhere, the terminal belongs to the game
	if f := logging.Setup(*debugFlag); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "snake-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	text, err := glyph.NewMono()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer text.Close()

	sound := &audio.Player{}
	if !*muteFlag {
		if err := sound.Init(); err != nil {
			log.Printf("audio: %v (continuing without sound)", err)
		}
		defer sound.Close()
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	loop := game.NewLoop(rng)

	// the field needs the full window size, the presenter scales it down
	frame := render.NewFramebuffer(game.MinWindowWidth, game.MinWindowHeight)
	compositor := render.NewCompositor(text)
	presenter := term.NewPresenter(screen)

	// only event delivery runs off the main loop
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					return nil
				}
				loop.Push(term.DecodeKey(ev))
			case *tcell.EventResize:
				screen.Sync()
				loop.RequestRedraw()
			}

		case now := <-ticker.C:
			out := loop.Advance(now.Sub(last))
			last = now
			sound.Play(out)

			if !loop.TakeRedraw() {
				continue
			}
			compositor.Compose(frame, loop)
			status := fmt.Sprintf("score: %d", loop.Score())
			if loop.Dead() {
				status += "  " + render.DeathMessage
			}
			presenter.SetStatus(status + "  (esc to quit)")
			if err := presenter.Present(frame); err != nil {
				log.Printf("present: %v", err)
			}
		}
	}
}
