package manager

import (
	"time"

	"bodyfatd/internal/bodyfat"
)

// EventKind names a manager lifecycle event.
type EventKind string

const (
	EventLoadStart     EventKind = "load_start"
	EventLoadReady     EventKind = "load_ready"
	EventModelNotFound EventKind = "load_model_not_found"
	EventLoadError     EventKind = "load_error"
	EventPredictDone   EventKind = "predict_done"
	EventPredictError  EventKind = "predict_error"
)

// Event is published for every artifact load and evaluation. Variant is
// empty for evaluations rejected before model selection.
type Event struct {
	Kind    EventKind
	Variant bodyfat.Variant
	At      time.Time
	Fields  map[string]any
}

// EventPublisher receives manager events synchronously; Publish must not block.
type EventPublisher interface {
	Publish(Event)
}

// PublisherFunc adapts a plain function to EventPublisher.
type PublisherFunc func(Event)

func (f PublisherFunc) Publish(e Event) { f(e) }

type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
