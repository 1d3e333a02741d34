package wildfire

import "testing"

func TestRunBurnsConnectedForest(t *testing.T) {
	res, err := Run(scenarioConfig(3, 3), 50)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Extinguished {
		t.Fatal("fire should burn out on a 3x3 forest")
	}
	if res.BurnedFraction != 1 {
		t.Fatalf("expected every tree to burn, got %.2f", res.BurnedFraction)
	}
	if res.Ignitions != 8 {
		t.Fatalf("expected 8 spread ignitions, got %d", res.Ignitions)
	}
	if res.Steps < 3 || res.Steps > 5 {
		t.Fatalf("unexpected run length %d", res.Steps)
	}
}

func TestRunStepLimit(t *testing.T) {
	cfg := scenarioConfig(10, 10)
	cfg.Params.SelfIgnitionProbability = 1
	cfg.Params.RegenerationThreshold = 1
	res, err := Run(cfg, 25)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Steps != 25 || res.Extinguished {
		t.Fatalf("expected the limit to stop the run, got %+v", res)
	}
	if res.WindChanges != 3 {
		t.Fatalf("expected rotations at steps 0, 10 and 20, got %d", res.WindChanges)
	}
}

func TestIgnitionSweep(t *testing.T) {
	base := scenarioConfig(10, 10)
	points := IgnitionSweep(base, []float64{0, 1}, 3, 200, 2)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Err != nil {
			t.Fatalf("sweep point %.1f failed: %v", p.IgnitionProbability, p.Err)
		}
		if p.ExtinguishedRuns != 3 {
			t.Fatalf("p=%.1f: expected all runs to burn out", p.IgnitionProbability)
		}
	}
	if points[0].MeanIgnitions != 0 || points[0].MeanSteps != 1 {
		t.Fatalf("p=0 should never spread: %+v", points[0])
	}
	if points[1].MeanBurnedFraction != 1 {
		t.Fatalf("p=1 should burn the whole forest: %+v", points[1])
	}
}
