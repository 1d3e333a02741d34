package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independently of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first poll always steps.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to one tick per
// second, the pace of the classic console printout.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Long stalls do not queue a burst of catch-up ticks.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
