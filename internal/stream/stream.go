package stream

import "math/rand"

// turnChance is the per-update probability of changing heading even without
// hitting a boundary.
const turnChance = 0.1

// Stream is a single moving glyph trail: a position and a current heading.
type Stream struct {
	X, Y int
	Dir  Direction
}

// New places a stream uniformly at random inside the given terminal
// dimensions with a random heading.
func New(maxX, maxY int, rng *rand.Rand) *Stream {
	return &Stream{
		X:   rng.Intn(maxX),
		Y:   rng.Intn(maxY),
		Dir: RandomDirection(rng),
	}
}

// Update advances the stream one step. On an x or upper-y boundary hit, or
// on a random 10% trial, the heading is redrawn and only violated axes are
// clamped; a bare random trigger leaves the position where it was for that
// tick. There is deliberately no lower-y clamp, so streams drift below the
// viewport and keep their x within [1, maxX-2]. Do not symmetrize the
// clamping: the drift is part of the crafted scroll effect.
func (s *Stream) Update(maxX int, rng *rand.Rand) {
	dx, dy := s.Dir.Offset()
	nx := s.X + dx
	ny := s.Y + dy

	if nx <= 0 || nx >= maxX-2 || ny <= 0 || rng.Float64() < turnChance {
		s.Dir = RandomDirection(rng)
		if nx <= 0 {
			s.X = 1
		}
		if nx >= maxX-1 {
			s.X = maxX - 2
		}
		if ny <= 0 {
			s.Y = 1
		}
		return
	}

	s.X = nx
	s.Y = ny
}
