// Package gate provides the synchronization primitives coordinating a
// demonstration run: a one-shot broadcast gate that starts all workers at
// once, and a latch that tracks how many workers are still live.
package gate

import "sync"

// StartGate releases any number of waiting goroutines exactly once.
// It replaces busy-waiting on a shared flag: closing the channel gives
// every waiter a visibility guarantee for writes made before Release.
type StartGate struct {
	once sync.Once
	ch   chan struct{}
}

// NewStartGate returns a gate in the closed (not yet released) position.
func NewStartGate() *StartGate {
	return &StartGate{ch: make(chan struct{})}
}

// Release opens the gate, unblocking every current and future Wait.
// Calling Release more than once is harmless; only the first call counts.
func (g *StartGate) Release() {
	g.once.Do(func() { close(g.ch) })
}

// Wait blocks until the gate is released. The caller must not hold any
// lock the releasing goroutine needs.
func (g *StartGate) Wait() {
	<-g.ch
}

// Released reports whether the gate has been released, without blocking.
func (g *StartGate) Released() bool {
	select {
	case <-g.ch:
		return true
	default:
		return false
	}
}
