// Package counter provides the shared counter at the heart of the
// demonstration, in two variants: one whose increment runs in a critical
// section, and one that deliberately does not.
//
// Incrementing an integer is a read, an add, and a write back. When two
// goroutines interleave those steps on the same value, one increment is
// lost. The Locked variant makes the three steps one critical section, so
// under any number of concurrent callers the final value equals the number
// of Inc calls. The Racy variant makes no such promise.
package counter

import "sync"

// Counter is a shared integer incremented concurrently by many goroutines.
type Counter interface {
	// Inc adds one to the counter.
	Inc()
	// Value returns the current count.
	Value() int64
}

// Locked is a Counter whose increment is guarded by a mutex. The mutex is
// declared above the field it protects.
type Locked struct {
	mu sync.Mutex
	n  int64
}

// Inc locks around exactly the read-add-write; nothing else happens in the
// critical section.
func (c *Locked) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *Locked) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Racy is a Counter with no guard. Concurrent Inc calls are a data race:
// the final value may be anything up to the number of calls. It exists to
// demonstrate exactly that.
type Racy struct {
	n int64
}

func (c *Racy) Inc() {
	c.n++
}

func (c *Racy) Value() int64 {
	return c.n
}

// New returns a Locked counter when locked is true and a Racy one otherwise.
func New(locked bool) Counter {
	if locked {
		return new(Locked)
	}
	return new(Racy)
}
