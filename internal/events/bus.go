package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrBusClosed is returned when publishing to or subscribing on a closed bus
var ErrBusClosed = errors.New("event bus closed")

// DefaultBufferSize is the per-subscriber channel capacity
const DefaultBufferSize = 64

// Bus is an in-process fan-out of store change events.
// Delivery never blocks the publisher: a subscriber whose buffer is full
// misses the event.
type Bus struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]chan Event
	sequence    int64
	closed      bool
	done        chan struct{}

	bufferSize int
	logger     *slog.Logger
	now        func() time.Time
}

// BusOption configures a Bus
type BusOption func(*Bus)

// WithBufferSize sets the per-subscriber channel capacity
func WithBufferSize(n int) BusOption {
	return func(b *Bus) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

// WithLogger sets the logger used for dropped-event warnings
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) BusOption {
	return func(b *Bus) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBus creates an empty bus
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subscribers: make(map[uuid.UUID]chan Event),
		done:        make(chan struct{}),
		bufferSize:  DefaultBufferSize,
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish stamps the event with the next sequence id and fans it out
func (b *Bus) Publish(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				"subscriber", id.String(),
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}

	return nil
}

// Subscribe registers a new subscriber until ctx is done
func (b *Bus) Subscribe(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch, ErrBusClosed
	}

	id := uuid.New()
	ch := make(chan Event, b.bufferSize)
	b.subscribers[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(id)
		case <-b.done:
		}
	}()

	b.logger.Debug("subscriber added", "subscriber", id.String())
	return ch, nil
}

// SubscriberCount returns the number of live subscribers
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

func (b *Bus) unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
		b.logger.Debug("subscriber removed", "subscriber", id.String())
	}
}

// Close closes every subscriber channel. Safe to call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	return nil
}
