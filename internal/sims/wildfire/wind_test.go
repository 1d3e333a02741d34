package wildfire

import (
	"testing"

	"wildfire/internal/core"
)

func TestWindEffectTable(t *testing.T) {
	want := map[Direction]map[Direction]float64{
		North: {North: 0.5, South: 1.5, East: 1.0, West: 1.0},
		South: {North: 1.5, South: 0.5, East: 1.0, West: 1.0},
		East:  {North: 1.0, South: 1.0, East: 0.5, West: 1.5},
		West:  {North: 1.0, South: 1.0, East: 1.5, West: 0.5},
	}
	for wind, row := range want {
		w := NewWindModel(wind, 1)
		for edge, m := range row {
			if got := w.MultiplierFor(edge); got != m {
				t.Fatalf("wind %s edge %s: got %v want %v", wind, edge, got, m)
			}
		}
	}
}

func TestCalmWindIsNeutral(t *testing.T) {
	for _, wind := range Directions {
		w := NewWindModel(wind, 0)
		for _, edge := range Directions {
			if got := w.MultiplierFor(edge); got != 1 {
				t.Fatalf("calm wind %s edge %s: got %v want 1", wind, edge, got)
			}
		}
	}
}

func TestRotateNeverRepeats(t *testing.T) {
	rng := core.NewRNG(7)
	w := NewWindModel(North, 1)
	seen := map[Direction]int{}
	for i := 0; i < 1000; i++ {
		prev := w.Direction()
		next := w.Rotate(rng)
		if next == prev {
			t.Fatalf("rotation %d kept direction %s", i, prev)
		}
		if next != w.Direction() {
			t.Fatalf("Rotate returned %s but wind is %s", next, w.Direction())
		}
		seen[next]++
	}
	for _, d := range Directions {
		if seen[d] == 0 {
			t.Fatalf("direction %s never selected in 1000 rotations", d)
		}
	}
}

func TestRotateDeterministicWithSeed(t *testing.T) {
	a := NewWindModel(East, 1)
	b := NewWindModel(East, 1)
	ra := core.NewRNG(99)
	rb := core.NewRNG(99)
	for i := 0; i < 50; i++ {
		if a.Rotate(ra) != b.Rotate(rb) {
			t.Fatalf("rotation %d diverged with equal seeds", i)
		}
	}
}
