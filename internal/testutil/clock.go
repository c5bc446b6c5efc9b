// Package testutil provides shared test helpers for deskstate.
package testutil

import (
	"sync"
	"time"
)

// DeterministicClock is a thread-safe fake wall clock for tests.
//
// Each call to Now() advances time by a fixed step, so created_at and
// updated_at assertions never race real time, and Reset() allows the
// same fixture to run repeatedly with identical timestamps.
type DeterministicClock struct {
	mu    sync.Mutex
	epoch time.Time
	step  time.Duration
	calls int
}

// NewDeterministicClock creates a clock starting at the given epoch,
// advancing one second per Now() call.
func NewDeterministicClock(epoch time.Time) *DeterministicClock {
	return &DeterministicClock{epoch: epoch, step: time.Second}
}

// Now returns the next timestamp: epoch + calls*step.
//
// The first call returns the epoch itself.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.epoch.Add(time.Duration(c.calls) * c.step)
	c.calls++
	return t
}

// Current returns the timestamp the next Now() call will produce,
// without advancing the clock.
func (c *DeterministicClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch.Add(time.Duration(c.calls) * c.step)
}

// Reset rewinds the clock to its epoch.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
}
