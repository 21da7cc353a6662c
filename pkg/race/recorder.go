package race

import (
	"fmt"
	"io"
	"sync"
)

// recorder collects a run's diagnostic events and optionally echoes them
// as console chatter. The chatter is informational only; the trace order
// is the record.
type recorder struct {
	mu      sync.Mutex
	trace   []Event
	chatter io.Writer // nil means silent; writes are serialized under mu
}

func newRecorder(chatter io.Writer) *recorder {
	return &recorder{chatter: chatter}
}

// record appends the event and, when chatter is enabled, prints a
// human-readable notice for it. The mutex covers the chatter write too:
// workers finish concurrently and the writer need not be thread-safe.
func (r *recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trace = append(r.trace, e)

	if r.chatter == nil {
		return
	}
	switch e.Kind {
	case KindSpawn:
		fmt.Fprintf(r.chatter, "spawned worker %d, %d live\n", e.Worker, e.Remaining)
	case KindRelease:
		fmt.Fprintf(r.chatter, "released start gate, %d workers running\n", e.Remaining)
	case KindFinish:
		fmt.Fprintf(r.chatter, "worker %d finishing, %d still live\n", e.Worker, e.Remaining)
	}
}

// events returns a copy of the trace recorded so far.
func (r *recorder) events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.trace))
	copy(out, r.trace)
	return out
}
