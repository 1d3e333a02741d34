package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(5)
	b := NewRNG(5)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() || a.IntN(7) != b.IntN(7) {
			t.Fatalf("draw %d diverged with equal seeds", i)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(9)
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("non-positive bounds must return 0")
	}
	for i := 0; i < 1000; i++ {
		if v := r.IntN(3); v < 0 || v >= 3 {
			t.Fatalf("IntN(3) returned %d", v)
		}
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}

func TestByteGridIndex(t *testing.T) {
	g := NewByteGrid(4, 3)
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	if g.Index(3, 2) != 11 || g.Index(1, 1) != 5 {
		t.Fatal("index must be row-major")
	}
	if d := NewByteGrid(0, -1); d.W != 1 || d.H != 1 {
		t.Fatalf("expected degenerate sizes to clamp to 1x1, got %dx%d", d.W, d.H)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("lookup y: %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("missing key reported present")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
