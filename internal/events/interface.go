package events

import "context"

// EventPublisher defines the interface for publishing and observing store changes.
// Stores depend on this rather than on *Bus so tests can pass nil or a fake.
type EventPublisher interface {
	// Publish delivers an event to all current subscribers
	Publish(event Event) error

	// Subscribe returns a channel of events that is closed when ctx ends
	// or the publisher is closed
	Subscribe(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every subscriber channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
