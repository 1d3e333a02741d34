package wildfire

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"wildfire/internal/core"
)

// Params holds tunable probabilities and cadences for the wildfire sim.
type Params struct {
	// FlammableChance is the share of cells created flammable; the rest
	// start as water.
	FlammableChance float64

	IgnitionProbability     float64
	SelfIgnitionProbability float64

	// RegenerationThreshold is the number of burned-out ticks before a cell
	// becomes flammable again. Zero disables regeneration.
	RegenerationThreshold int

	WindRotationInterval int
	WindStrength         float64
}

// Config controls the wildfire world dimensions and randomness.
type Config struct {
	Rows int
	Cols int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows: 30,
		Cols: 60,
		Seed: 1337,
		Params: Params{
			FlammableChance:         0.9,
			IgnitionProbability:     0.5,
			SelfIgnitionProbability: 0.05,
			RegenerationThreshold:   10,
			WindRotationInterval:    10,
			WindStrength:            1,
		},
	}
}

// Validate reports the first out-of-range field, wrapped in
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfiguration, c.Rows, c.Cols)
	}
	return c.Params.Validate()
}

// Validate checks every parameter range.
func (p Params) Validate() error {
	probs := []struct {
		name  string
		value float64
	}{
		{"flammable chance", p.FlammableChance},
		{"ignition probability", p.IgnitionProbability},
		{"self-ignition probability", p.SelfIgnitionProbability},
	}
	for _, pr := range probs {
		if !validProbability(pr.value) {
			return fmt.Errorf("%w: %s %v outside [0,1]", ErrInvalidConfiguration, pr.name, pr.value)
		}
	}
	if p.RegenerationThreshold < 0 {
		return fmt.Errorf("%w: regeneration threshold %d is negative", ErrInvalidConfiguration, p.RegenerationThreshold)
	}
	if p.WindRotationInterval <= 0 {
		return fmt.Errorf("%w: wind rotation interval %d must be positive", ErrInvalidConfiguration, p.WindRotationInterval)
	}
	if math.IsNaN(p.WindStrength) || p.WindStrength < 0 || p.WindStrength > 2 {
		return fmt.Errorf("%w: wind strength %v outside [0,2]", ErrInvalidConfiguration, p.WindStrength)
	}
	return nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// Weight pairs an initial cell state with the probability of drawing it.
type Weight struct {
	State       State
	Probability float64
}

// Composition is an ordered table of initial cell states. Order matters for
// reproducibility: each cell consumes one draw walked through the table.
type Composition []Weight

// DefaultComposition splits cells between flammable and water.
func DefaultComposition(flammableChance float64) Composition {
	return Composition{
		{State: StateFlammable, Probability: flammableChance},
		{State: StateNonFlammable, Probability: 1 - flammableChance},
	}
}

// Validate checks that only initial states appear and the weights sum to 1.
func (c Composition) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty composition", ErrInvalidConfiguration)
	}
	sum := 0.0
	for _, w := range c {
		if w.State != StateFlammable && w.State != StateNonFlammable {
			return fmt.Errorf("%w: %s is not an initial state", ErrInvalidConfiguration, w.State)
		}
		if !validProbability(w.Probability) {
			return fmt.Errorf("%w: %s weight %v outside [0,1]", ErrInvalidConfiguration, w.State, w.Probability)
		}
		sum += w.Probability
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: composition sums to %v, want 1", ErrInvalidConfiguration, sum)
	}
	return nil
}

func (c Composition) sample(rng *core.RNG) State {
	u := rng.Float64()
	acc := 0.0
	for _, w := range c {
		acc += w.Probability
		if u < acc {
			return w.State
		}
	}
	return c[len(c)-1].State
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparseable values fail with ErrInvalidConfiguration; range
// checks happen in Validate.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	ints := map[string]*int{
		"w":                      &c.Cols,
		"cols":                   &c.Cols,
		"h":                      &c.Rows,
		"rows":                   &c.Rows,
		"regeneration_threshold": &c.Params.RegenerationThreshold,
		"wind_rotation_interval": &c.Params.WindRotationInterval,
	}
	floats := map[string]*float64{
		"flammable_chance":          &c.Params.FlammableChance,
		"ignition_probability":      &c.Params.IgnitionProbability,
		"self_ignition_probability": &c.Params.SelfIgnitionProbability,
		"wind_strength":             &c.Params.WindStrength,
	}

	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := cfg[key]
		var err error
		switch {
		case key == "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case ints[key] != nil:
			*ints[key], err = strconv.Atoi(v)
		case floats[key] != nil:
			*floats[key], err = strconv.ParseFloat(v, 64)
		default:
			return Config{}, fmt.Errorf("%w: unknown parameter %q", ErrInvalidConfiguration, key)
		}
		if err != nil {
			return Config{}, fmt.Errorf("%w: parameter %s=%q: %v", ErrInvalidConfiguration, key, v, err)
		}
	}
	return c, nil
}
