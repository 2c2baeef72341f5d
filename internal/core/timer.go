package core

import "time"

// FixedDT is the simulation tick. Spring tunings are chosen against it.
const FixedDT = time.Second / 120

// Clock reports monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose origin is the moment of the call.
func NewSystemClock() *SystemClock { return &SystemClock{start: time.Now()} }

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration { return time.Since(c.start) }

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }

// FixedStep accumulates frame time and releases it in whole steps, carrying
// the remainder into the next frame. Lag is never discarded: a stall is paid
// back in catch-up ticks.
type FixedStep struct {
	step time.Duration
	lag  time.Duration
}

// NewFixedStep constructs a FixedStep releasing ticks of the given length.
func NewFixedStep(step time.Duration) *FixedStep {
	if step <= 0 {
		step = FixedDT
	}
	return &FixedStep{step: step}
}

// Step returns the tick length.
func (f *FixedStep) Step() time.Duration { return f.step }

// Lag returns the time accumulated but not yet consumed.
func (f *FixedStep) Lag() time.Duration { return f.lag }

// Accumulate adds elapsed frame time. Negative deltas are ignored.
func (f *FixedStep) Accumulate(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	f.lag += elapsed
}

// ShouldStep consumes one tick from the lag if enough has accumulated.
func (f *FixedStep) ShouldStep() bool {
	if f.lag >= f.step {
		f.lag -= f.step
		return true
	}
	return false
}

// Alpha returns how far the lag is into the next tick, in [0, 1).
func (f *FixedStep) Alpha() float64 {
	return float64(f.lag) / float64(f.step)
}
