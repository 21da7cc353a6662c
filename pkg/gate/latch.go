package gate

import (
	"sync"

	"github.com/goose-lang/std"
)

// Latch counts live workers and lets one goroutine block until the count
// drops to zero. It is similar to a sync.WaitGroup, except that Done
// reports the remaining count so a finishing worker can identify itself.
//
// The latch's mutex guards only the count; nothing here may be held while
// blocked on another lock.
type Latch struct {
	mu   sync.Mutex
	cond *sync.Cond
	n    uint64
}

// NewLatch returns a latch waiting for no workers.
func NewLatch() *Latch {
	l := &Latch{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Add registers n more live workers. Call before the workers can finish.
func (l *Latch) Add(n uint64) {
	l.mu.Lock()
	l.n = std.SumAssumeNoOverflow(l.n, n)
	l.mu.Unlock()
}

// Done marks one worker as finished and returns the number still live.
// The last worker to finish wakes everyone blocked in Wait. The count
// never goes negative: finishing more workers than were added panics.
func (l *Latch) Done() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.n == 0 {
		panic("gate: Done called with no live workers")
	}
	l.n--
	if l.n == 0 {
		l.cond.Broadcast()
	}
	return l.n
}

// Wait blocks until every registered worker has called Done. A latch with
// no registered workers is already done and Wait returns immediately.
func (l *Latch) Wait() {
	l.mu.Lock()
	for l.n > 0 {
		l.cond.Wait()
	}
	l.mu.Unlock()
}

// Live reports the current number of live workers.
func (l *Latch) Live() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}
