// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/mikenye/pixelsnake/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// note is one step of a cue
type note struct {
	freq float64
	dur  time.Duration
}

// cues, as note sequences
var (
	eatNotes   = []note{{660, 40 * time.Millisecond}, {990, 60 * time.Millisecond}}
	deathNotes = []note{{440, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {220, 240 * time.Millisecond}}
)

// Player plays event cues through the system speaker. The zero value, and
// a player whose Init failed, is silent.
type Player struct {
	ready bool
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Close releases the speaker.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}

// Play sounds the cue for whatever happened on a pass of the game loop.
func (p *Player) Play(out game.Outcome) {
	switch {
	case out.Died:
		p.play(deathNotes)
	case out.Ate:
		p.play(eatNotes)
	}
}

func (p *Player) play(notes []note) {
	if !p.ready {
		return
	}
	s, err := cue(sampleRate, notes)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(s)
}

// cue strings sine tones together and turns the result down a bit.
func cue(sr beep.SampleRate, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %v Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.7}, nil
}
