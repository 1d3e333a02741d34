package wildfire

import "wildfire/internal/core"

// Direction is a compass direction used both for the prevailing wind and for
// the edge between a cell and one of its orthogonal neighbors.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every compass direction in table order.
var Directions = [...]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Arrow returns a single-rune glyph pointing in the direction.
func (d Direction) Arrow() string {
	switch d {
	case North:
		return "↑"
	case South:
		return "↓"
	case East:
		return "→"
	case West:
		return "←"
	default:
		return "?"
	}
}

// windEffect is indexed by [wind][edge], where edge is the direction from the
// candidate cell toward the burning neighbor.
var windEffect = [4][4]float64{
	North: {North: 0.5, South: 1.5, East: 1.0, West: 1.0},
	South: {North: 1.5, South: 0.5, East: 1.0, West: 1.0},
	East:  {North: 1.0, South: 1.0, East: 0.5, West: 1.5},
	West:  {North: 1.0, South: 1.0, East: 1.5, West: 0.5},
}

// WindModel tracks the prevailing wind and how strongly it bends spread odds.
type WindModel struct {
	direction Direction
	strength  float64
}

// NewWindModel returns a wind blowing in the given direction. A strength of 1
// applies the effect table as-is, 0 disables wind entirely.
func NewWindModel(direction Direction, strength float64) *WindModel {
	return &WindModel{direction: direction, strength: strength}
}

// Direction returns the current wind direction.
func (w *WindModel) Direction() Direction { return w.direction }

// Strength returns the wind strength scale.
func (w *WindModel) Strength() float64 { return w.strength }

// MultiplierFor returns the spread multiplier for a burning neighbor lying in
// the given direction from the candidate cell.
func (w *WindModel) MultiplierFor(edge Direction) float64 {
	base := windEffect[w.direction][edge]
	return 1 + w.strength*(base-1)
}

// Rotate switches to one of the three other directions chosen uniformly and
// returns the new direction.
func (w *WindModel) Rotate(rng *core.RNG) Direction {
	// Offsets 1..3 modulo 4 never land back on the current direction.
	offset := 1 + rng.IntN(len(Directions)-1)
	w.direction = Directions[(int(w.direction)+offset)%len(Directions)]
	return w.direction
}
