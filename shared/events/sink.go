package events

import "sync"

// Sink receives combat events. Implementations must not call back into the
// fighter that emitted the event.
type Sink interface {
	Emit(e Event)
}

// Nop discards every event.
var Nop Sink = SinkFunc(func(Event) {})

// SinkFunc adapts a function to a Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Multi fans an event out to several sinks in order.
type Multi []Sink

func (m Multi) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// Recorder keeps every emitted event until drained. The server uses it to
// batch events between network flushes.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Drain returns the recorded events and clears the recorder.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// OfType returns the recorded events of type T without draining.
func OfType[T Event](r *Recorder) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []T
	for _, e := range r.events {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
