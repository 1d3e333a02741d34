package wildfire

import "sync"

// RunResult captures telemetry from one deterministic fire run.
type RunResult struct {
	// Steps counts the ticks executed after the seed fire.
	Steps int
	// Extinguished is true when the run ended because nothing was burning,
	// false when it hit the step limit.
	Extinguished bool
	// PeakBurning is the largest number of cells burning at once.
	PeakBurning     int
	PeakBurningStep int
	// Ignitions counts neighbor ignitions; SelfIgnitions is tracked apart.
	Ignitions     int
	SelfIgnitions int
	Regenerations int
	WindChanges   int
	// BurnedFraction is the share of initially flammable cells that caught
	// fire at least once.
	BurnedFraction float64
}

// Run seeds a fire in a world built from cfg and steps it until nothing is
// burning or maxSteps ticks have elapsed. A non-positive maxSteps means no
// limit, which only terminates when regeneration and self-ignition cannot
// keep the fire alive.
func Run(cfg Config, maxSteps int) (RunResult, error) {
	e, err := New(cfg)
	if err != nil {
		return RunResult{}, err
	}
	initial := e.grid.flammable()
	seed, err := e.SeedFire()
	if err != nil {
		return RunResult{}, err
	}

	touched := make([]bool, len(e.grid.cells))
	touched[e.grid.index(seed)] = true
	result := RunResult{PeakBurning: 1}

	for maxSteps <= 0 || result.Steps < maxSteps {
		burning := e.Step()
		result.Steps++
		report := e.LastReport()
		result.Ignitions += len(report.Ignited)
		for _, c := range report.Ignited {
			touched[e.grid.index(c)] = true
		}
		if report.SelfIgnited {
			result.SelfIgnitions++
			touched[e.grid.index(report.SelfIgnition)] = true
		}
		result.Regenerations += report.Regenerated
		if report.WindChanged {
			result.WindChanges++
		}
		if n := e.Snapshot().Count(StateBurning); n > result.PeakBurning {
			result.PeakBurning = n
			result.PeakBurningStep = result.Steps
		}
		if !burning {
			result.Extinguished = true
			break
		}
	}

	if len(initial) > 0 {
		burned := 0
		for _, c := range initial {
			if touched[e.grid.index(c)] {
				burned++
			}
		}
		result.BurnedFraction = float64(burned) / float64(len(initial))
	}
	return result, nil
}

// SweepPoint aggregates several runs at one ignition probability.
type SweepPoint struct {
	IgnitionProbability float64
	Trials              int
	MeanSteps           float64
	MeanBurnedFraction  float64
	MeanIgnitions       float64
	ExtinguishedRuns    int
	Err                 error
}

// IgnitionSweep evaluates each ignition probability over trials runs seeded
// base.Seed, base.Seed+1, ... so every point sees the same worlds. Runs are
// independent engines; workers only bounds how many execute at once.
func IgnitionSweep(base Config, probabilities []float64, trials, maxSteps, workers int) []SweepPoint {
	if trials <= 0 {
		trials = 1
	}
	if workers <= 0 {
		workers = 1
	}

	points := make([]SweepPoint, len(probabilities))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, p := range probabilities {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p float64) {
			defer wg.Done()
			defer func() { <-sem }()
			points[i] = evaluateIgnition(base, p, trials, maxSteps)
		}(i, p)
	}
	wg.Wait()
	return points
}

func evaluateIgnition(base Config, p float64, trials, maxSteps int) SweepPoint {
	point := SweepPoint{IgnitionProbability: p, Trials: trials}
	for t := 0; t < trials; t++ {
		cfg := base
		cfg.Params.IgnitionProbability = p
		cfg.Seed = base.Seed + int64(t)
		res, err := Run(cfg, maxSteps)
		if err != nil {
			point.Err = err
			return point
		}
		point.MeanSteps += float64(res.Steps)
		point.MeanBurnedFraction += res.BurnedFraction
		point.MeanIgnitions += float64(res.Ignitions)
		if res.Extinguished {
			point.ExtinguishedRuns++
		}
	}
	n := float64(trials)
	point.MeanSteps /= n
	point.MeanBurnedFraction /= n
	point.MeanIgnitions /= n
	return point
}
