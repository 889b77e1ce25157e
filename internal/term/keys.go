package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/pixelsnake/internal/game"
)

// DecodeKey maps arrows and WASD to directions. Every other key yields
// game.NoDirection, which still counts as a key press.
func DecodeKey(ev *tcell.EventKey) game.Direction {
	return decode(ev.Key(), ev.Rune())
}

// IsQuit reports whether ev should end the program.
func IsQuit(ev *tcell.EventKey) bool {
	return isQuitKey(ev.Key())
}

func decode(k tcell.Key, r rune) game.Direction {
	switch k {
	case tcell.KeyUp:
		return game.Up
	case tcell.KeyDown:
		return game.Down
	case tcell.KeyLeft:
		return game.Left
	case tcell.KeyRight:
		return game.Right
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.Up
		case 's', 'S':
			return game.Down
		case 'a', 'A':
			return game.Left
		case 'd', 'D':
			return game.Right
		}
	}
	return game.NoDirection
}

func isQuitKey(k tcell.Key) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC
}
