package game

import (
	"golang.org/x/exp/rand"
)

// World is the fixed playing field and the food sitting on it.
type World struct {
	// size of the field in cells
	Width, Height int

	// pixels per cell
	BlockSize int

	// position of the food
	Food Position

	// source for food placement
	rng *rand.Rand
}

// NewWorld creates a world and drops the first piece of food anywhere on it.
func NewWorld(width, height, blockSize int, rng *rand.Rand) *World {
	w := &World{
		Width:     width,
		Height:    height,
		BlockSize: blockSize,
		rng:       rng,
	}
	w.PlaceFood(nil)
	return w
}

// Contains reports whether p lies inside [-W/2, W/2) x [-H/2, H/2).
func (w *World) Contains(p Position) bool {
	hw, hh := w.Width/2, w.Height/2
	return p.X >= -hw && p.X < hw && p.Y >= -hh && p.Y < hh
}

// PlaceFood moves the food to a random cell that is not in exclude.
//
// There is no retry limit, so exclude must be smaller than the grid.
func (w *World) PlaceFood(exclude []Position) {
	hw, hh := w.Width/2, w.Height/2
	for {
		p := Position{
			X: w.rng.Intn(w.Width) - hw,
			Y: w.rng.Intn(w.Height) - hh,
		}
		if !containsPosition(exclude, p) {
			w.Food = p
			return
		}
	}
}

func containsPosition(list []Position, p Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
