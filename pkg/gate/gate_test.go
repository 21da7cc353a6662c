package gate_test

import (
	"sync"
	"testing"
	"time"

	"github.com/hAkselS/mutexes/pkg/gate"
)

func TestReleaseUnblocksAllWaiters(t *testing.T) {
	g := gate.NewStartGate()

	if g.Released() {
		t.Fatal("gate released before Release was called")
	}

	const waiters = 8
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Wait()
		}()
	}

	// Waiters must still be blocked before the release.
	time.Sleep(10 * time.Millisecond)
	if g.Released() {
		t.Fatal("gate released itself")
	}

	g.Release()
	wg.Wait()

	if !g.Released() {
		t.Error("gate not released after Release")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	g := gate.NewStartGate()
	g.Release()
	g.Release() // must not panic on double close

	if !g.Released() {
		t.Error("gate not released")
	}
	// Wait after release returns immediately.
	g.Wait()
}

func TestWaitAfterRelease(t *testing.T) {
	g := gate.NewStartGate()
	g.Release()

	done := make(chan struct{})
	go func() {
		g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked on an already released gate")
	}
}
