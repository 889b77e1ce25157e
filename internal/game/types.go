package game

// Position is a cell on the playing field in grid units. The origin is the
// centre of the grid and Y increases upward.
type Position struct {
	X, Y int
}

// Step returns p moved one cell in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case Up:
		return Position{p.X, p.Y + 1}
	case Down:
		return Position{p.X, p.Y - 1}
	case Left:
		return Position{p.X - 1, p.Y}
	case Right:
		return Position{p.X + 1, p.Y}
	}
	return p
}

// Direction is a heading, or NoDirection for "keep the current heading".
type Direction uint8

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Opposite returns the 180 degree reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
