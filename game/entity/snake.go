package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player's body, head first. Segments live in a ring buffer
// starting at ring[head]; occupied mirrors the ring for lookups.
type Snake struct {
	ring      []types.Point
	head      int // Index of the head inside ring
	length    int
	occupied  map[types.Point]int // Segment count per cell
	Direction types.Direction
}

// NewSnake builds a snake from head-first segments moving in dir.
func NewSnake(dir types.Direction, segments ...types.Point) *Snake {
	capacity := len(segments)
	if capacity < 4 {
		capacity = 4
	}
	s := &Snake{
		ring:      make([]types.Point, capacity),
		occupied:  make(map[types.Point]int, capacity),
		Direction: dir,
	}
	// Push in reverse so the first argument ends up as the head
	for i := len(segments) - 1; i >= 0; i-- {
		s.PushFront(segments[i])
	}
	return s
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.length
}

// GetHead returns the head segment.
func (s *Snake) GetHead() types.Point {
	return s.ring[s.head]
}

// GetTail returns the last segment.
func (s *Snake) GetTail() types.Point {
	return s.At(s.length - 1)
}

// At returns segment i, counted from the head.
func (s *Snake) At(i int) types.Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

// Segments returns a head-first copy of the body.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, s.length)
	for i := range body {
		body[i] = s.At(i)
	}
	return body
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p types.Point) bool {
	return s.occupied[p] > 0
}

// PushFront adds p as the new head.
func (s *Snake) PushFront(p types.Point) {
	if s.length == len(s.ring) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = p
	s.length++
	s.occupied[p]++
}

// PopBack removes and returns the tail. The snake never shrinks below one segment.
func (s *Snake) PopBack() types.Point {
	if s.length <= 1 {
		return s.GetHead()
	}
	tail := s.GetTail()
	s.length--
	if n := s.occupied[tail] - 1; n > 0 {
		s.occupied[tail] = n
	} else {
		delete(s.occupied, tail)
	}
	return tail
}

// Move advances the snake onto newHead keeping its length.
func (s *Snake) Move(newHead types.Point) {
	s.PushFront(newHead)
	s.PopBack()
}

// Grow advances the snake onto newHead keeping the tail.
func (s *Snake) Grow(newHead types.Point) {
	s.PushFront(newHead)
}

// SetDirection changes direction unless dir lies on the current axis.
// Turning is allowed, reversing or repeating the current heading is not.
func (s *Snake) SetDirection(dir types.Direction) bool {
	current := s.Direction.Delta()
	if dir.Vertical() {
		if current.Y != 0 {
			return false
		}
	} else if current.X != 0 {
		return false
	}
	s.Direction = dir
	return true
}

// NextHead is the cell the head moves into on the next step.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Delta())
}

func (s *Snake) grow() {
	ring := make([]types.Point, len(s.ring)*2)
	for i := 0; i < s.length; i++ {
		ring[i] = s.At(i)
	}
	s.ring = ring
	s.head = 0
}
