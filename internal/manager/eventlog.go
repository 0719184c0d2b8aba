package manager

import "sync"

// EventLog keeps the most recent events in a fixed-size ring.
type EventLog struct {
	mu   sync.Mutex
	buf  []Event
	next int
	full bool
}

// NewEventLog returns a log holding up to size events (minimum 1).
func NewEventLog(size int) *EventLog {
	if size < 1 {
		size = 1
	}
	return &EventLog{buf: make([]Event, size)}
}

func (l *EventLog) Publish(e Event) {
	l.mu.Lock()
	l.buf[l.next] = e
	l.next = (l.next + 1) % len(l.buf)
	if l.next == 0 {
		l.full = true
	}
	l.mu.Unlock()
}

// Events returns the retained events, oldest first.
func (l *EventLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.full {
		return append([]Event(nil), l.buf[:l.next]...)
	}
	out := make([]Event, 0, len(l.buf))
	out = append(out, l.buf[l.next:]...)
	return append(out, l.buf[:l.next]...)
}

// Kinds lists the retained event kinds, oldest first.
func (l *EventLog) Kinds() []EventKind {
	evts := l.Events()
	out := make([]EventKind, len(evts))
	for i, e := range evts {
		out[i] = e.Kind
	}
	return out
}
