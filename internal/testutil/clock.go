package testutil

import (
	"sync"
	"time"
)

// SteppingClock provides a deterministic wall clock for tests.
//
// Each call to Now returns the current instant and advances it by a fixed
// step, so successive sessions in a test get distinct, predictable
// timestamps. This lets the same fixture produce an identical document on
// every run.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu   sync.Mutex
	cur  time.Time
	step time.Duration
}

// NewSteppingClock creates a clock starting at the given instant,
// advancing by step on each Now call.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{cur: start, step: step}
}

// Now returns the current instant and advances the clock by one step.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.cur
	c.cur = c.cur.Add(c.step)
	return t
}

// Set repositions the clock at the given instant.
//
// Used for test reuse; the next call to Now returns exactly this instant.
func (c *SteppingClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = t
}
