package main

import (
	"slices"
	"testing"
)

func TestParseProbabilities(t *testing.T) {
	got, err := parseProbabilities(" 0.1, 0.5 ,1,")
	if err != nil {
		t.Fatalf("parseProbabilities: %v", err)
	}
	if !slices.Equal(got, []float64{0.1, 0.5, 1}) {
		t.Fatalf("got %v", got)
	}
	for _, bad := range []string{"", "0.2,abc", "1.5"} {
		if _, err := parseProbabilities(bad); err == nil {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}
