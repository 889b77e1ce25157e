package game

import (
	"log"
	"time"

	"golang.org/x/exp/rand"
)

// State is the state of the game loop.
type State uint8

const (
	// the snake is moving and the player is in control
	StateAlive State = iota + 1

	// the snake has died, waiting for a key press to restart
	StateDead
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Outcome describes what happened during one call to Loop.Advance.
type Outcome struct {
	// a movement tick ran
	Ticked bool

	// food was eaten on this tick
	Ate bool

	// the snake died on this tick
	Died bool

	// the snake was reset after a death
	Reset bool
}

// Loop owns all mutable game state and drives it at a fixed tick rate,
// independent of how often frames are drawn.
type Loop struct {
	world *World
	snake *Snake
	input InputQueue

	// time accumulated since the last tick
	timer time.Duration

	state State

	// set whenever committed state changed and a frame should be painted
	redraw bool
}

// NewLoop creates a loop with the standard 40x40 grid and a fresh snake.
func NewLoop(rng *rand.Rand) *Loop {
	world := NewWorld(GridWidth, GridHeight, BlockSize, rng)
	return NewLoopWith(world, NewSnake(InitialSize, world))
}

// NewLoopWith creates a loop around an existing world and snake.
func NewLoopWith(world *World, snake *Snake) *Loop {
	return &Loop{
		world:  world,
		snake:  snake,
		state:  StateAlive,
		redraw: true,
	}
}

// Push buffers a decoded key press.
func (l *Loop) Push(d Direction) {
	l.input.Push(d)
}

// Advance runs one scheduling pass with elapsed being the wall-clock time
// since the previous pass. At most one tick happens per pass.
func (l *Loop) Advance(elapsed time.Duration) Outcome {
	var out Outcome
	l.timer += elapsed

	switch l.state {
	case StateDead:
		// any buffered key restarts; the key itself is left for the next tick
		if !l.input.Empty() {
			l.snake.Reset()
			l.state = StateAlive
			l.redraw = true
			out.Reset = true
			log.Printf("game: reset")
		}

	case StateAlive:
		if l.timer < TickInterval {
			return out
		}
		l.timer = 0
		out.Ticked = true
		out.Ate = l.snake.Update(l.input.Pop())
		if l.snake.Dead() {
			l.state = StateDead
			out.Died = true
			log.Printf("game: died at %v with score %d", l.snake.Head(), l.snake.Score())
		}
		l.redraw = true
	}
	return out
}

// RequestRedraw asks for the next frame to be painted, e.g. after a resize.
func (l *Loop) RequestRedraw() { l.redraw = true }

// TakeRedraw reports whether a redraw was requested and clears the request.
func (l *Loop) TakeRedraw() bool {
	r := l.redraw
	l.redraw = false
	return r
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Dead() bool { return l.state == StateDead }

func (l *Loop) World() *World { return l.world }

func (l *Loop) Snake() *Snake { return l.snake }

// Input exposes the pending key presses.
func (l *Loop) Input() *InputQueue { return &l.input }

// Score is the value shown in the score overlay.
func (l *Loop) Score() int { return l.snake.Score() }
