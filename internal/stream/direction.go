package stream

import "math/rand"

// Direction is one of the 8 compass headings a stream can travel.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var directionNames = [...]string{"left", "right", "up", "down", "up-left", "up-right", "down-left", "down-right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Offset maps a direction to its unit step. Screen coordinates: y grows
// downward.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case UpLeft:
		return -1, -1
	case UpRight:
		return 1, -1
	case DownLeft:
		return -1, 1
	default:
		return 1, 1
	}
}

// RandomDirection picks one of the 8 headings uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(8))
}
