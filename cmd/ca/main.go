//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wildfire/internal/app"
	"wildfire/internal/core"
	_ "wildfire/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	seed, err := cfg.ResolvedSeed()
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	if err := sim.Reset(seed); err != nil {
		log.Fatalf("seed %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("wildfire — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
