package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"wildfire/internal/app"
	"wildfire/internal/sims/wildfire"
	"wildfire/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSim(flag.CommandLine)
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second")
	headless := flag.Bool("headless", false, "print each tick as plain text instead of opening the terminal viewer")
	maxSteps := flag.Int("max-steps", 0, "stop headless runs after this many ticks (0 runs until the fire is out)")
	exitOnEnd := flag.Bool("exit", false, "leave the terminal viewer once the fire is out")
	flag.Parse()

	simCfg, err := wildfire.FromMap(cfg.SimOptions())
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	engine, err := wildfire.New(simCfg)
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	if err := engine.Reset(0); err != nil {
		log.Fatalf("seed fire: %v", err)
	}

	if *headless {
		runHeadless(engine, *maxSteps)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	err = term.Run(screen, engine, term.Options{TPS: cfg.TPS, ExitOnEnd: *exitOnEnd})
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Fire ended after %d steps\n", engine.StepCount())
}

func runHeadless(engine *wildfire.Engine, maxSteps int) {
	logger := log.New(os.Stderr, "", 0)
	fmt.Printf("Beginning first ignition:\n%s\n", engine.Snapshot())
	for maxSteps <= 0 || engine.StepCount() < maxSteps {
		burning := engine.Step()
		report := engine.LastReport()
		if report.WindChanged {
			logger.Printf("wind direction changed to: %s %s", report.Wind, report.Wind.Arrow())
		}
		fmt.Printf("Step %d\nWind direction: %s %s\n%s\n", engine.StepCount(), report.Wind, report.Wind.Arrow(), engine.Snapshot())
		if !burning {
			fmt.Println("End of simulation")
			return
		}
	}
	fmt.Printf("Stopped after %d steps with fire still burning\n", engine.StepCount())
}
