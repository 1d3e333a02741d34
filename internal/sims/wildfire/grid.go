package wildfire

import (
	"fmt"

	"wildfire/internal/core"
)

// Coord addresses a cell by 0-based row and column.
type Coord struct {
	Row, Col int
}

// neighborOffsets lists orthogonal neighbors in evaluation order. Each entry
// carries the direction from the candidate cell toward that neighbor.
var neighborOffsets = [...]struct {
	dr, dc int
	edge   Direction
}{
	{-1, 0, North},
	{1, 0, South},
	{0, -1, West},
	{0, 1, East},
}

// Grid owns the cells and the wind, and applies the fire rules to them.
type Grid struct {
	rows, cols int
	cells      []Cell
	wind       *WindModel

	ignitionProbability     float64
	selfIgnitionProbability float64
	regenerationThreshold   int

	rng *core.RNG
}

// BuildGrid creates a rows x cols grid where each cell is independently
// flammable with the given probability and water otherwise.
func BuildGrid(rows, cols int, flammableChance float64, rng *core.RNG) (*Grid, error) {
	if !validProbability(flammableChance) {
		return nil, fmt.Errorf("%w: flammable chance %v outside [0,1]", ErrInvalidConfiguration, flammableChance)
	}
	return BuildGridWithComposition(rows, cols, DefaultComposition(flammableChance), rng)
}

// BuildGridWithComposition creates a grid drawing each cell's initial state
// from the composition table. The prevailing wind starts in a random
// direction at full strength.
func BuildGridWithComposition(rows, cols int, comp Composition, rng *core.RNG) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		rng:   rng,
	}
	for i := range g.cells {
		g.cells[i] = NewCell(comp.sample(rng))
	}
	g.wind = NewWindModel(Directions[rng.IntN(len(Directions))], 1)
	return g, nil
}

// Configure applies the spread, self-ignition, regeneration and wind strength
// parameters. Grid dimensions and composition are fixed at build time.
func (g *Grid) Configure(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.ignitionProbability = p.IgnitionProbability
	g.selfIgnitionProbability = p.SelfIgnitionProbability
	g.regenerationThreshold = p.RegenerationThreshold
	g.wind.strength = p.WindStrength
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Wind exposes the prevailing wind.
func (g *Grid) Wind() *WindModel { return g.wind }

// At returns the state of the cell at c. Out-of-range coordinates panic.
func (g *Grid) At(c Coord) State { return g.cells[g.index(c)].state }

func (g *Grid) index(c Coord) int { return c.Row*g.cols + c.Col }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// computePendingIgnitions decides which flammable cells catch fire from the
// cells burning right now. Coordinates are returned in row-major order.
//
// A candidate stops at its first successful roll, so a cell with several
// burning neighbors is not given the combined odds of all of them; later
// neighbors are only rolled when earlier ones fail.
func (g *Grid) computePendingIgnitions() []Coord {
	var pending []Coord
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col].state != StateFlammable {
				continue
			}
			for _, n := range neighborOffsets {
				nr, nc := row+n.dr, col+n.dc
				if !g.inBounds(nr, nc) {
					continue
				}
				if g.cells[nr*g.cols+nc].state != StateBurning {
					continue
				}
				p := g.ignitionProbability * g.wind.MultiplierFor(n.edge)
				if p > 1 {
					p = 1
				}
				if g.rng.Chance(p) {
					pending = append(pending, Coord{Row: row, Col: col})
					break
				}
			}
		}
	}
	return pending
}

func (g *Grid) extinguishBurning() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].BurnOut() {
			n++
		}
	}
	return n
}

func (g *Grid) applyIgnitions(coords []Coord) int {
	n := 0
	for _, c := range coords {
		if g.cells[g.index(c)].Ignite() {
			n++
		}
	}
	return n
}

// advanceRegeneration ages every burned-out cell before any of them is
// checked against the threshold.
func (g *Grid) advanceRegeneration() int {
	for i := range g.cells {
		if g.cells[i].state == StateBurnedOut {
			g.cells[i].IncrementRegenerationTimer(1)
		}
	}
	if g.regenerationThreshold <= 0 {
		return 0
	}
	n := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.state == StateBurnedOut && c.timer >= g.regenerationThreshold {
			c.Regenerate()
			n++
		}
	}
	return n
}

// selfIgnite rolls once against the self-ignition probability and on success
// lights a uniformly chosen flammable cell.
func (g *Grid) selfIgnite() (Coord, bool) {
	if !g.rng.Chance(g.selfIgnitionProbability) {
		return Coord{}, false
	}
	return g.igniteRandom()
}

// igniteRandom lights one flammable cell chosen uniformly over the grid. It
// reports false when none is left.
func (g *Grid) igniteRandom() (Coord, bool) {
	candidates := g.flammable()
	if len(candidates) == 0 {
		return Coord{}, false
	}
	c := candidates[g.rng.IntN(len(candidates))]
	g.cells[g.index(c)].Ignite()
	return c, true
}

func (g *Grid) flammable() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].state == StateFlammable {
			out = append(out, Coord{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// AnyBurning reports whether at least one cell is burning.
func (g *Grid) AnyBurning() bool {
	for i := range g.cells {
		if g.cells[i].state == StateBurning {
			return true
		}
	}
	return false
}

// tick runs one full grid update and fills in the grid-level parts of the
// report. Wind rotation is left to the engine.
func (g *Grid) tick(report *StepReport) {
	pending := g.computePendingIgnitions()
	report.Extinguished = g.extinguishBurning()
	g.applyIgnitions(pending)
	report.Ignited = pending
	report.SelfIgnition, report.SelfIgnited = g.selfIgnite()
	report.Regenerated = g.advanceRegeneration()
	report.Burning = g.AnyBurning()
}

// Snapshot is a read-only copy of the cell states at one point in time.
type Snapshot struct {
	Rows, Cols int
	states     []State
}

// Snapshot copies the current cell states.
func (g *Grid) Snapshot() Snapshot {
	states := make([]State, len(g.cells))
	for i := range g.cells {
		states[i] = g.cells[i].state
	}
	return Snapshot{Rows: g.rows, Cols: g.cols, states: states}
}

// At returns the state at (row, col).
func (s Snapshot) At(row, col int) State { return s.states[row*s.Cols+col] }

// Count returns how many cells are in the given state.
func (s Snapshot) Count(state State) int {
	n := 0
	for _, v := range s.states {
		if v == state {
			n++
		}
	}
	return n
}
