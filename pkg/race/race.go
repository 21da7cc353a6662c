// Package race runs a controlled demonstration of the read-modify-write
// race condition: a configurable number of workers each increment a shared
// counter a fixed number of times, started together through a one-shot
// gate and joined through a live-worker latch. With the counter's guard in
// place the final count equals workers × loops on every run; without it,
// increments are lost under contention.
package race

import (
	"io"
	"sync"
	"time"

	"github.com/hAkselS/mutexes/pkg/counter"
	"github.com/hAkselS/mutexes/pkg/gate"
)

// Default run shape, matching the original demonstration.
const (
	DefaultWorkers = 2
	DefaultLoops   = 10 * 1000 * 1000
)

// Config describes one demonstration run.
type Config struct {
	// Workers is the number of concurrent incrementing goroutines.
	// Negative values are treated as zero.
	Workers int
	// Loops is the number of increments each worker performs.
	// Negative values are treated as zero.
	Loops int64
	// Locked selects the guarded counter. When false the increment is a
	// deliberate data race and the final count may fall short.
	Locked bool
	// Chatter, when non-nil, receives diagnostic progress notices.
	Chatter io.Writer
}

// Result reports the outcome of a run.
type Result struct {
	// Count is the final counter value.
	Count int64
	// Expected is Workers × Loops, the count a correctly guarded run
	// produces.
	Expected int64
	// Elapsed and CPU are the wall-clock and process CPU time from gate
	// release to the last worker finishing.
	Elapsed time.Duration
	CPU     time.Duration
	// Trace is the run's diagnostic event log.
	Trace []Event
}

// Lost returns the number of increments the run lost to the race.
func (r Result) Lost() int64 {
	return r.Expected - r.Count
}

// state is the record shared by the coordinator and every worker for the
// duration of a run.
type state struct {
	start *gate.StartGate
	live  *gate.Latch
	count counter.Counter
	loops int64
	rec   *recorder

	// exited is signaled only after a worker's last record, so the
	// coordinator can collect the trace after every goroutine is gone.
	// The latch signals completion earlier, at the last Done, which is
	// the moment the timing stops.
	exited sync.WaitGroup
}

// worker runs the per-task state machine: block on the start gate, perform
// the increment loop, then report in as finished. It must hold no lock
// while blocked on the gate, and it touches the counter's and the latch's
// critical sections only one at a time.
func worker(id uint64, s *state) {
	defer s.exited.Done()
	s.start.Wait()
	for i := int64(0); i < s.loops; i++ {
		s.count.Inc()
	}
	remaining := s.live.Done()
	s.rec.record(Event{Worker: id, Kind: KindFinish, Remaining: remaining})
}

// Run executes one demonstration and blocks until every worker has
// finished. There is no timeout: a worker that never finishes hangs the
// run, which is an accepted limitation of the demonstration.
func Run(cfg Config) Result {
	workers := cfg.Workers
	if workers < 0 {
		workers = 0
	}
	loops := cfg.Loops
	if loops < 0 {
		loops = 0
	}

	s := &state{
		start: gate.NewStartGate(),
		live:  gate.NewLatch(),
		count: counter.New(cfg.Locked),
		loops: loops,
		rec:   newRecorder(cfg.Chatter),
	}

	// Every worker is registered with the latch before it can observe the
	// gate, so the live count is complete before anyone runs.
	for id := uint64(1); id <= uint64(workers); id++ {
		s.live.Add(1)
		s.exited.Add(1)
		go worker(id, s)
		s.rec.record(Event{Worker: id, Kind: KindSpawn, Remaining: s.live.Live()})
	}

	sw := startStopwatch()
	s.start.Release()
	s.rec.record(Event{Kind: KindRelease, Remaining: uint64(workers)})

	// The coordinator blocks holding no lock any worker needs.
	s.live.Wait()
	elapsed, cpu := sw.split()

	// The last Done precedes the last finish record; wait for the
	// goroutines themselves before reading the trace.
	s.exited.Wait()

	return Result{
		Count:    s.count.Value(),
		Expected: int64(workers) * loops,
		Elapsed:  elapsed,
		CPU:      cpu,
		Trace:    s.rec.events(),
	}
}
