package game

import "time"

// Startup configuration. None of this is adjustable at runtime.
const (
	// size of the playing field in cells (both even)
	GridWidth  = 40
	GridHeight = 40

	// pixels per cell
	BlockSize = 20

	// length of a fresh snake
	InitialSize = 3

	// wall-clock time between movement ticks
	TickInterval = 125 * time.Millisecond

	// ticks of tail retention granted per food eaten
	GrowthPerFood = 3

	// max pending directions in the input queue
	InputDepth = 2

	// window title
	WindowTitle = "ethans snake"

	// minimum window size in pixels
	MinWindowWidth  = BlockSize*GridWidth + 30
	MinWindowHeight = BlockSize*GridHeight + 40
)
