package game

// Snake is the player's snake. The body is ordered head first.
type Snake struct {
	// segments, body[0] is the head
	body []Position

	// current heading
	dir Direction

	// ticks left during which the tail is kept instead of removed
	growBuf int

	// length restored by Reset
	initialSize int

	// the field the snake lives on, used for food and bounds
	world *World
}

// NewSnake creates a snake of the given length lying on the centre row with
// its tail at the origin, heading right.
func NewSnake(initialSize int, world *World) *Snake {
	s := &Snake{
		initialSize: initialSize,
		world:       world,
	}
	s.Reset()
	return s
}

// Reset puts the snake back into its starting configuration. The world, and
// the food on it, are left alone.
func (s *Snake) Reset() {
	s.body = s.body[:0]
	for i := s.initialSize - 1; i >= 0; i-- {
		s.body = append(s.body, Position{X: i, Y: 0})
	}
	s.dir = Right
	s.growBuf = 0
}

// Update moves the snake one cell. A requested direction that reverses the
// current heading is ignored, as is NoDirection. It reports whether food was
// eaten on this tick.
func (s *Snake) Update(requested Direction) bool {
	if requested != NoDirection && requested != s.dir.Opposite() {
		s.dir = requested
	}

	// the food check is made against the head from before the move
	head := s.body[0]

	// push the new head
	s.body = append(s.body, Position{})
	copy(s.body[1:], s.body)
	s.body[0] = head.Step(s.dir)

	ate := false
	if head == s.world.Food {
		s.world.PlaceFood(s.body)
		s.growBuf = GrowthPerFood
		ate = true
	}

	if s.growBuf > 0 {
		s.growBuf--
	} else {
		// drop the tail
		s.body = s.body[:len(s.body)-1]
	}
	return ate
}

// Dead reports whether the head has left the field or run into the body.
func (s *Snake) Dead() bool {
	head := s.body[0]
	if !s.world.Contains(head) {
		return true
	}
	return containsPosition(s.body[1:], head)
}

// Head returns the position of the head segment.
func (s *Snake) Head() Position { return s.body[0] }

// Body returns the segments, head first. The slice must not be modified.
func (s *Snake) Body() []Position { return s.body }

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

func (s *Snake) Direction() Direction { return s.dir }

// GrowthPending returns how many more ticks the tail will be kept.
func (s *Snake) GrowthPending() int { return s.growBuf }

// Score is the length the snake will have once pending growth is applied.
func (s *Snake) Score() int { return len(s.body) + s.growBuf }
