package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/mikenye/pixelsnake/internal/game"
)

// drain reads s to the end and returns the sample count and peak amplitude.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	var total int
	var peak float64
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueLength(t *testing.T) {
	tests := []struct {
		name  string
		notes []note
	}{
		{"eat", eatNotes},
		{"death", deathNotes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := cue(sampleRate, tt.notes)
			if err != nil {
				t.Fatalf("cue failed: %v", err)
			}

			var want int
			for _, n := range tt.notes {
				want += sampleRate.N(n.dur)
			}

			got, peak := drain(s)
			if got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
			if peak == 0 || peak > 0.5 {
				t.Errorf("Expected attenuated non-silent cue, peak %v", peak)
			}
		})
	}
}

func TestCueRejectsBadFrequency(t *testing.T) {
	if _, err := cue(sampleRate, []note{{freq: float64(sampleRate), dur: time.Millisecond}}); err == nil {
		t.Error("Expected error for frequency at the sample rate")
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player

	// must not touch the speaker
	p.Play(game.Outcome{Ticked: true, Ate: true})
	p.Play(game.Outcome{Ticked: true, Died: true})
	p.Close()
}
