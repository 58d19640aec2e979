package engine

import (
	"sync/atomic"
	"time"
)

// ManualClock is a TimeProvider that only moves when told to
// Tests and headless runs use it to step the scheduler deterministically
type ManualClock struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds since base
}

// NewManualClock creates a clock reading start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{base: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

// Set jumps to t, which may be earlier than the current reading
func (c *ManualClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(c.base)))
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.offset.Add(int64(d))
}
