package audit

import (
	"context"
	"time"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}

func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.ListAll(ctx)
}

// QueuedPublisher hands events to a Worker over a buffered channel so request
// handlers never wait on the sink. Events are dropped with ErrQueueFull when the
// buffer is saturated.
type QueuedPublisher struct {
	store Store
	inbox chan Event
}

func NewQueuedPublisher(store Store, buffer int) *QueuedPublisher {
	return &QueuedPublisher{store: store, inbox: make(chan Event, buffer)}
}

func (p *QueuedPublisher) Emit(_ context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *QueuedPublisher) List(ctx context.Context) ([]Event, error) {
	return p.store.ListAll(ctx)
}

// Inbox exposes the receive side for a Worker.
func (p *QueuedPublisher) Inbox() <-chan Event {
	return p.inbox
}
