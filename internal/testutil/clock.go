package testutil

import (
	"sync"
	"time"
)

// FixedClock is a settable wall clock for tests. It implements ucc.Clock.
//
// The clock only moves when Set or Advance is called, so "now" based
// conversions are reproducible across runs and golden comparisons.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// NewFixedClockUnixMilli creates a clock stopped at ms milliseconds since
// the Unix epoch, in UTC.
func NewFixedClockUnixMilli(ms int64) *FixedClock {
	return NewFixedClock(time.UnixMilli(ms).UTC())
}

// Now returns the current fixed time.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d and returns the new time.
// A negative d moves it backwards.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
