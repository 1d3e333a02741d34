package wildfire

import (
	"fmt"

	"wildfire/internal/core"
)

// StepReport summarizes what changed during one tick.
type StepReport struct {
	Step int

	// Ignited lists cells that caught fire from a burning neighbor.
	Ignited      []Coord
	Extinguished int

	SelfIgnition Coord
	SelfIgnited  bool

	Regenerated int

	// Burning is the termination flag measured before the wind check.
	Burning bool

	WindChanged bool
	Wind        Direction
}

// Engine drives a Grid through discrete ticks and owns the only random
// source used by the simulation.
type Engine struct {
	cfg     Config
	rng     *core.RNG
	grid    *Grid
	step    int
	last    StepReport
	display *core.ByteGrid
}

// New validates the configuration and builds the world from cfg.Seed. No
// fire is lit; call SeedFire or IgniteAt before stepping.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	if err := e.rebuild(cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) rebuild(seed int64) error {
	rng := core.NewRNG(seed)
	grid, err := BuildGrid(e.cfg.Rows, e.cfg.Cols, e.cfg.Params.FlammableChance, rng)
	if err != nil {
		return err
	}
	if err := grid.Configure(e.cfg.Params); err != nil {
		return err
	}
	e.rng = rng
	e.grid = grid
	e.step = 0
	e.last = StepReport{Wind: grid.wind.Direction()}
	e.display = core.NewByteGrid(e.cfg.Cols, e.cfg.Rows)
	e.rebuildDisplay()
	return nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Cols, H: e.cfg.Rows} }

// Cells exposes the display buffer: one State value per cell, row-major.
func (e *Engine) Cells() []uint8 { return e.display.Cells() }

// Reset rebuilds the world and lights the seed fire. A zero seed reuses the
// configured one.
func (e *Engine) Reset(seed int64) error {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	if err := e.rebuild(effective); err != nil {
		return err
	}
	_, err := e.SeedFire()
	return err
}

// SeedFire ignites one flammable cell chosen uniformly over the grid.
func (e *Engine) SeedFire() (Coord, error) {
	c, ok := e.grid.igniteRandom()
	if !ok {
		return Coord{}, fmt.Errorf("%w: %dx%d grid has no flammable cell", ErrNoIgnitableCell, e.cfg.Rows, e.cfg.Cols)
	}
	e.rebuildDisplay()
	return c, nil
}

// IgniteAt lights a specific cell. The cell must be flammable.
func (e *Engine) IgniteAt(c Coord) error {
	if !e.grid.inBounds(c.Row, c.Col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrInvalidConfiguration, c.Row, c.Col, e.cfg.Rows, e.cfg.Cols)
	}
	if !e.grid.cells[e.grid.index(c)].Ignite() {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrNoIgnitableCell, c.Row, c.Col, e.grid.At(c))
	}
	e.rebuildDisplay()
	return nil
}

// Step advances the world by one tick and reports whether any cell is still
// burning afterwards.
func (e *Engine) Step() bool {
	report := StepReport{Step: e.step}
	e.grid.tick(&report)

	if e.step%e.cfg.Params.WindRotationInterval == 0 {
		e.grid.wind.Rotate(e.rng)
		report.WindChanged = true
	}
	report.Wind = e.grid.wind.Direction()
	e.step++

	e.last = report
	e.rebuildDisplay()
	return report.Burning
}

// CurrentWindDirection returns the prevailing wind.
func (e *Engine) CurrentWindDirection() Direction { return e.grid.wind.Direction() }

// StepCount returns the number of completed ticks.
func (e *Engine) StepCount() int { return e.step }

// LastReport returns the summary of the most recent tick.
func (e *Engine) LastReport() StepReport { return e.last }

// Snapshot copies the current cell states.
func (e *Engine) Snapshot() Snapshot { return e.grid.Snapshot() }

// Burning reports whether any cell is currently burning.
func (e *Engine) Burning() bool { return e.grid.AnyBurning() }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) rebuildDisplay() {
	buf := e.display.Cells()
	for row := 0; row < e.grid.rows; row++ {
		for col := 0; col < e.grid.cols; col++ {
			buf[e.display.Index(col, row)] = uint8(e.grid.At(Coord{Row: row, Col: col}))
		}
	}
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		e, err := New(c)
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
