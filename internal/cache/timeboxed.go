package cache

import (
	"sync"
	"time"
)

// TimeBoxed holds a single value that is considered fresh for ttl after it
// was stored. The clock is injectable so tests can step across the boundary.
type TimeBoxed[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	value     T
	fetchedAt time.Time
	set       bool
}

// NewTimeBoxed creates an empty cache. A nil clock uses time.Now.
func NewTimeBoxed[T any](ttl time.Duration, now func() time.Time) *TimeBoxed[T] {
	if now == nil {
		now = time.Now
	}
	return &TimeBoxed[T]{ttl: ttl, now: now}
}

// Get returns the stored value while it is fresh.
func (c *TimeBoxed[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if !c.set || c.staleLocked() {
		return zero, false
	}
	return c.value, true
}

// Set replaces the value and restarts its lifetime.
func (c *TimeBoxed[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	c.fetchedAt = c.now()
	c.set = true
}

// IsStale reports whether the cache is empty or past its ttl.
func (c *TimeBoxed[T]) IsStale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.set || c.staleLocked()
}

func (c *TimeBoxed[T]) staleLocked() bool {
	return c.now().Sub(c.fetchedAt) >= c.ttl
}
