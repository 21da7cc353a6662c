package gate_test

import (
	"sync"
	"testing"
	"time"

	"github.com/hAkselS/mutexes/pkg/gate"
)

func TestWaitWithNoWorkersReturnsImmediately(t *testing.T) {
	l := gate.NewLatch()

	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked on an empty latch")
	}
}

func TestDoneReturnsRemainingCount(t *testing.T) {
	l := gate.NewLatch()
	l.Add(3)

	for want := uint64(2); ; want-- {
		got := l.Done()
		if got != want {
			t.Errorf("Done returned %d, want %d", got, want)
		}
		if want == 0 {
			break
		}
	}
	if live := l.Live(); live != 0 {
		t.Errorf("Live = %d after all workers done, want 0", live)
	}
}

func TestDonePanicsWithNoLiveWorkers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic from Done on an empty latch")
		}
	}()
	gate.NewLatch().Done()
}

func TestWaitBlocksUntilLastDone(t *testing.T) {
	l := gate.NewLatch()
	l.Add(2)

	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()

	l.Done()
	select {
	case <-done:
		t.Fatal("Wait returned with a worker still live")
	case <-time.After(10 * time.Millisecond):
	}

	l.Done()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the last Done")
	}
}

func TestConcurrentDone(t *testing.T) {
	const workers = 50
	l := gate.NewLatch()
	l.Add(workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Done()
		}()
	}
	wg.Wait()
	l.Wait()

	if live := l.Live(); live != 0 {
		t.Errorf("Live = %d, want 0", live)
	}
}
