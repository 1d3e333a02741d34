package app

import (
	"flag"
	"testing"
)

func TestBindParsesOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-seed", "7",
		"-set", "rows=12",
		"-set", "ignition_probability = 0.8",
		"-set", "rows=16",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts := cfg.SimOptions()
	if opts["rows"] != "16" {
		t.Fatalf("expected later override to win, got %q", opts["rows"])
	}
	if opts["ignition_probability"] != "0.8" {
		t.Fatalf("expected trimmed value, got %q", opts["ignition_probability"])
	}
	if opts["seed"] != "7" {
		t.Fatalf("expected seed to carry over, got %q", opts["seed"])
	}
}

func TestKVListRejectsMalformed(t *testing.T) {
	var l KVList
	for _, bad := range []string{"rows", "=5", " =5"} {
		if err := l.Set(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
	if len(l) != 0 {
		t.Fatalf("rejected overrides were stored: %v", l)
	}
}

func TestResolvedSeedPrefersOverride(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "7", "-set", "seed=42"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	seed, err := cfg.ResolvedSeed()
	if err != nil {
		t.Fatalf("ResolvedSeed: %v", err)
	}
	if seed != 42 {
		t.Fatalf("expected the -set seed to win, got %d", seed)
	}

	plain := NewConfig()
	plain.Seed = 9
	if seed, err := plain.ResolvedSeed(); err != nil || seed != 9 {
		t.Fatalf("expected flag seed 9, got %d (%v)", seed, err)
	}

	bad := NewConfig()
	bad.Set = KVList{"seed=abc"}
	if _, err := bad.ResolvedSeed(); err == nil {
		t.Fatal("expected an unparseable seed to fail")
	}
}

func TestBindSimOmitsViewerFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindSim(fs)

	for _, name := range []string{"sim", "scale", "hud", "tps"} {
		if fs.Lookup(name) != nil {
			t.Fatalf("flag -%s should only be bound for the windowed viewer", name)
		}
	}
	for _, name := range []string{"seed", "set"} {
		if fs.Lookup(name) == nil {
			t.Fatalf("flag -%s missing", name)
		}
	}
}
