package wildfire

// State enumerates the vegetation/fire states a cell can hold.
type State uint8

const (
	StateFlammable State = iota
	StateBurning
	StateBurnedOut
	StateNonFlammable
)

func (s State) String() string {
	switch s {
	case StateFlammable:
		return "flammable"
	case StateBurning:
		return "burning"
	case StateBurnedOut:
		return "burned-out"
	case StateNonFlammable:
		return "non-flammable"
	default:
		return "unknown"
	}
}

// Cell holds the state of one grid position and its regeneration countdown.
// The timer is only non-zero while the cell is burned out.
type Cell struct {
	state State
	timer int
}

// NewCell returns a cell in the given state with a cleared timer.
func NewCell(state State) Cell {
	return Cell{state: state}
}

// State returns the current state.
func (c *Cell) State() State { return c.state }

// RegenerationTimer returns the number of ticks accumulated while burned out.
func (c *Cell) RegenerationTimer() int { return c.timer }

// Ignite moves a flammable cell to burning. Any other state is left alone.
func (c *Cell) Ignite() bool {
	if c.state != StateFlammable {
		return false
	}
	c.state = StateBurning
	return true
}

// BurnOut moves a burning cell to burned out.
func (c *Cell) BurnOut() bool {
	if c.state != StateBurning {
		return false
	}
	c.state = StateBurnedOut
	return true
}

// IncrementRegenerationTimer adds n ticks to the timer.
func (c *Cell) IncrementRegenerationTimer(n int) {
	c.timer += n
}

// ResetRegenerationTimer clears the timer.
func (c *Cell) ResetRegenerationTimer() {
	c.timer = 0
}

// Regenerate returns a burned-out cell to flammable and clears its timer.
func (c *Cell) Regenerate() bool {
	if c.state != StateBurnedOut {
		return false
	}
	c.state = StateFlammable
	c.timer = 0
	return true
}
