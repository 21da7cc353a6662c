package race

// Kind represents the type of diagnostic event
type Kind uint8

const (
	KindSpawn Kind = iota + 1
	KindRelease
	KindFinish
)

func (k Kind) String() string {
	switch k {
	case KindSpawn:
		return "spawn"
	case KindRelease:
		return "release"
	case KindFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Event is a single entry in a run's diagnostic log. Worker is the 1-based
// ordinal of the worker involved (0 for coordinator events). Remaining is
// the live-worker count after the event, where that is meaningful.
type Event struct {
	Worker    uint64 `json:"worker,omitempty"`
	Kind      Kind   `json:"kind"`
	Remaining uint64 `json:"remaining,omitempty"`
}
