package game

import (
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

// far corner, off every path used by these tests
var parkedFood = Position{X: -GridWidth / 2, Y: -GridHeight / 2}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(GridWidth, GridHeight, BlockSize, rand.New(rand.NewSource(1)))
	w.Food = parkedFood
	return w
}

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(InitialSize, newTestWorld(t))

	want := []Position{{2, 0}, {1, 0}, {0, 0}}
	if !reflect.DeepEqual(s.Body(), want) {
		t.Errorf("Expected body %v, got %v", want, s.Body())
	}
	if s.Direction() != Right {
		t.Errorf("Expected heading right, got %v", s.Direction())
	}
	if s.GrowthPending() != 0 {
		t.Errorf("Expected no pending growth, got %d", s.GrowthPending())
	}
}

func TestSnakeSingleTick(t *testing.T) {
	s := NewSnake(InitialSize, newTestWorld(t))

	if s.Update(NoDirection) {
		t.Error("Expected no food to be eaten")
	}

	want := []Position{{3, 0}, {2, 0}, {1, 0}}
	if !reflect.DeepEqual(s.Body(), want) {
		t.Errorf("Expected body %v, got %v", want, s.Body())
	}
	if s.Dead() {
		t.Error("Expected snake to be alive")
	}
}

func TestSnakeIgnoresReversal(t *testing.T) {
	tests := []struct {
		name      string
		heading   Direction
		requested Direction
		want      Direction
	}{
		{"right then left", Right, Left, Right},
		{"left then right", Left, Right, Left},
		{"up then down", Up, Down, Up},
		{"down then up", Down, Up, Down},
		{"right then up", Right, Up, Up},
		{"up then left", Up, Left, Left},
		{"right then none", Right, NoDirection, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(InitialSize, newTestWorld(t))
			s.dir = tt.heading
			head := s.Head()

			s.Update(tt.requested)

			if s.Direction() != tt.want {
				t.Errorf("Expected heading %v, got %v", tt.want, s.Direction())
			}
			if got, want := s.Head(), head.Step(tt.want); got != want {
				t.Errorf("Expected head at %v, got %v", want, got)
			}
		})
	}
}

func TestSnakeGrowth(t *testing.T) {
	w := newTestWorld(t)
	s := NewSnake(InitialSize, w)

	// food under the head is eaten as the head moves off it
	w.Food = s.Head()
	if !s.Update(NoDirection) {
		t.Fatal("Expected food to be eaten")
	}
	for _, p := range s.Body() {
		if p == w.Food {
			t.Fatalf("Food placed on body segment %v", p)
		}
	}
	w.Food = parkedFood

	wantLen := []int{4, 5, 6, 6, 6}
	wantBuf := []int{2, 1, 0, 0, 0}
	for i := range wantLen {
		if i > 0 {
			s.Update(NoDirection)
		}
		if s.Len() != wantLen[i] {
			t.Errorf("tick %d: expected length %d, got %d", i+1, wantLen[i], s.Len())
		}
		if s.GrowthPending() != wantBuf[i] {
			t.Errorf("tick %d: expected growth buffer %d, got %d", i+1, wantBuf[i], s.GrowthPending())
		}
		if s.Score() != InitialSize+GrowthPerFood {
			t.Errorf("tick %d: expected score %d, got %d", i+1, InitialSize+GrowthPerFood, s.Score())
		}
	}
}

func TestSnakeFoodCheckUsesPreviousHead(t *testing.T) {
	w := newTestWorld(t)
	s := NewSnake(InitialSize, w)

	// food directly ahead is not eaten on the tick the head enters it
	w.Food = Position{3, 0}
	if s.Update(NoDirection) {
		t.Fatal("Expected food not to be eaten when entering its cell")
	}
	if s.Len() != InitialSize {
		t.Errorf("Expected length %d, got %d", InitialSize, s.Len())
	}

	// but is eaten on the next tick
	if !s.Update(NoDirection) {
		t.Fatal("Expected food to be eaten when leaving its cell")
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	w := newTestWorld(t)
	s := NewSnake(InitialSize, w)

	w.Food = s.Head()
	s.Update(NoDirection)
	w.Food = parkedFood
	for i := 0; i < 3; i++ {
		s.Update(NoDirection)
	}
	if s.Len() != 6 {
		t.Fatalf("Expected length 6, got %d", s.Len())
	}

	steps := []struct {
		dir  Direction
		dead bool
	}{
		{Up, false},
		{Left, false},
		{Down, true},
	}
	for i, step := range steps {
		s.Update(step.dir)
		if s.Dead() != step.dead {
			t.Fatalf("step %d (%v): expected dead=%v, body %v", i, step.dir, step.dead, s.Body())
		}
	}
}

func TestSnakeBoundaryDeath(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		ticks int
	}{
		// head starts at (2,0); right edge is x=20 exclusive
		{"right edge", Right, GridWidth/2 - 2},
		{"top edge", Up, GridHeight / 2},
		{"bottom edge", Down, GridHeight/2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(InitialSize, newTestWorld(t))
			s.Update(tt.dir)
			for i := 1; i < tt.ticks; i++ {
				if s.Dead() {
					t.Fatalf("Died early after %d ticks at %v", i, s.Head())
				}
				s.Update(tt.dir)
			}
			if !s.Dead() {
				t.Errorf("Expected death after %d ticks, head at %v", tt.ticks, s.Head())
			}
		})
	}
}

func TestSnakeReset(t *testing.T) {
	w := newTestWorld(t)
	s := NewSnake(InitialSize, w)

	w.Food = s.Head()
	s.Update(Up)
	s.Update(Left)
	s.Update(Left)

	s.Reset()

	want := []Position{{2, 0}, {1, 0}, {0, 0}}
	if !reflect.DeepEqual(s.Body(), want) {
		t.Errorf("Expected body %v, got %v", want, s.Body())
	}
	if s.Direction() != Right {
		t.Errorf("Expected heading right, got %v", s.Direction())
	}
	if s.GrowthPending() != 0 {
		t.Errorf("Expected growth buffer 0, got %d", s.GrowthPending())
	}
}

func TestPlaceFoodExclusion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := NewWorld(8, 8, BlockSize, rng)

	for trial := 0; trial < 500; trial++ {
		var exclude []Position
		for i := 0; i < 40; i++ {
			exclude = append(exclude, Position{X: rng.Intn(8) - 4, Y: rng.Intn(8) - 4})
		}

		w.PlaceFood(exclude)

		if !w.Contains(w.Food) {
			t.Fatalf("trial %d: food %v out of bounds", trial, w.Food)
		}
		for _, p := range exclude {
			if p == w.Food {
				t.Fatalf("trial %d: food placed on excluded cell %v", trial, p)
			}
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	w := NewWorld(4, 4, BlockSize, rand.New(rand.NewSource(7)))
	free := Position{1, -2}

	var exclude []Position
	for x := -2; x < 2; x++ {
		for y := -2; y < 2; y++ {
			if p := (Position{x, y}); p != free {
				exclude = append(exclude, p)
			}
		}
	}

	for i := 0; i < 20; i++ {
		w.PlaceFood(exclude)
		if w.Food != free {
			t.Fatalf("Expected food at %v, got %v", free, w.Food)
		}
	}
}

func TestWorldContains(t *testing.T) {
	w := newTestWorld(t)
	tests := []struct {
		p    Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{-20, -20}, true},
		{Position{19, 19}, true},
		{Position{20, 0}, false},
		{Position{0, 20}, false},
		{Position{-21, 0}, false},
		{Position{0, -21}, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
