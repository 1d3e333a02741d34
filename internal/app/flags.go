package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one override after checking its shape.
func (l *KVList) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "wildfire", Scale: 12, TPS: 4, Seed: 1337, HUDWidth: 220}
}

// Bind attaches the windowed viewer's full flag set to fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	c.BindSim(fs)
}

// BindSim attaches only the flags that configure the simulation itself, for
// runners without a window.
func (c *Config) BindSim(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.Set, "set", "simulation parameter override in key=value form (repeatable)")
}

// SimOptions turns the overrides into the map handed to a sim factory. Later
// overrides win.
func (c *Config) SimOptions() map[string]string {
	opts := make(map[string]string, len(c.Set)+1)
	for _, kv := range c.Set {
		key, value, _ := strings.Cut(kv, "=")
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if _, ok := opts["seed"]; !ok {
		opts["seed"] = fmt.Sprint(c.Seed)
	}
	return opts
}

// ResolvedSeed is the seed the sim is built with: a "seed" override from -set
// when present, the -seed flag otherwise.
func (c *Config) ResolvedSeed() (int64, error) {
	v := c.SimOptions()["seed"]
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed %q: %w", v, err)
	}
	return seed, nil
}
