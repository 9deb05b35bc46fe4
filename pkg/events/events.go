// Package events publishes order lifecycle events.
package events

import (
	"context"
	"sync"
	"time"

	"grubdash/pkg/order"
)

// Type names an order lifecycle event.
type Type string

const (
	OrderCreated Type = "order.created"
	OrderUpdated Type = "order.updated"
	OrderDeleted Type = "order.deleted"
)

// Event is the message body sent for every order mutation.
type Event struct {
	Type       Type        `json:"type"`
	Order      order.Order `json:"order"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// New stamps an event with the current time.
func New(t Type, o order.Order) Event {
	return Event{Type: t, Order: o, OccurredAt: time.Now().UTC()}
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Publish appends e.
func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Close is a no-op.
func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
