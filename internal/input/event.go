// Package input defines the platform-neutral events the game reacts to.
package input

// Kind classifies an event.
type Kind uint8

const (
	KindQuit Kind = iota
	KindKeyDown
	KindKeyUp
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	default:
		return "unknown"
	}
}

// Key identifies the few keys the game distinguishes. Anything else arrives
// as KeyOther. Escape never arrives as a key: backends turn it into Quit.
type Key uint8

const (
	KeyOther Key = iota
	KeyEnter
	KeySpace
	KeyR
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
)

// Event is one discrete input occurrence.
type Event struct {
	Kind Kind
	Key  Key
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: KindQuit} }

// Press returns a key-down event.
func Press(k Key) Event { return Event{Kind: KindKeyDown, Key: k} }

// Release returns a key-up event.
func Release(k Key) Event { return Event{Kind: KindKeyUp, Key: k} }

// Source yields queued events without blocking.
type Source interface {
	// Poll appends every pending event to dst and returns the extended slice.
	Poll(dst []Event) []Event
}

// Queue is an in-memory Source.
type Queue struct {
	pending []Event
}

// Push enqueues events for the next Poll.
func (q *Queue) Push(evs ...Event) { q.pending = append(q.pending, evs...) }

// Poll drains the queue.
func (q *Queue) Poll(dst []Event) []Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.pending) }
