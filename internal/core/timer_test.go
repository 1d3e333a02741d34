package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstPollSteps(t *testing.T) {
	fs := NewFixedStep(4)
	if !fs.ShouldStepAt(time.Unix(100, 0)) {
		t.Fatal("expected the first poll to step")
	}
}

func TestFixedStepWaitsForInterval(t *testing.T) {
	fs := NewFixedStep(4)
	start := time.Unix(100, 0)
	fs.ShouldStepAt(start)

	if fs.ShouldStepAt(start.Add(100 * time.Millisecond)) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.ShouldStepAt(start.Add(250 * time.Millisecond)) {
		t.Fatal("expected a step once 250ms accumulated")
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	fs.ShouldStepAt(start)

	later := start.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStepAt(later) {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected stall to yield at most 2 ticks, got %d", steps)
	}
}

func TestSetTPSFallsBack(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second {
		t.Fatalf("expected 1s interval for non-positive TPS, got %v", fs.Interval())
	}
}
