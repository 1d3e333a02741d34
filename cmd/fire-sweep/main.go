package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"wildfire/internal/app"
	"wildfire/internal/sims/wildfire"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSim(flag.CommandLine)
	probs := flag.String("p", "0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8,0.9,1", "comma-separated ignition probabilities to evaluate")
	trials := flag.Int("trials", 20, "runs per probability")
	steps := flag.Int("steps", 500, "tick limit per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel probability evaluations")
	flag.Parse()

	values, err := parseProbabilities(*probs)
	if err != nil {
		log.Fatal(err)
	}
	base, err := wildfire.FromMap(cfg.SimOptions())
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	if err := base.Validate(); err != nil {
		log.Fatalf("configure: %v", err)
	}

	fmt.Printf("Sweeping %d ignition probabilities on a %dx%d grid (%d trials, %d steps, %d workers)\n",
		len(values), base.Rows, base.Cols, *trials, *steps, *workers)

	points := wildfire.IgnitionSweep(base, values, *trials, *steps, *workers)
	fmt.Printf("%8s %10s %10s %10s %8s\n", "p", "steps", "burned", "ignitions", "ended")
	for _, pt := range points {
		if pt.Err != nil {
			log.Printf("p=%.3f: %v", pt.IgnitionProbability, pt.Err)
			continue
		}
		fmt.Printf("%8.3f %10.1f %9.1f%% %10.1f %5d/%d\n",
			pt.IgnitionProbability, pt.MeanSteps, pt.MeanBurnedFraction*100, pt.MeanIgnitions, pt.ExtinguishedRuns, pt.Trials)
	}
}

func parseProbabilities(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse probability %q: %w", field, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("probability %v outside [0,1]", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no probabilities given")
	}
	return out, nil
}
