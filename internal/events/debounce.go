package events

import (
	"context"
	"time"
)

// Debounce coalesces bursts from in into single StoreChanged events.
// The first event of a burst opens a window; everything arriving before the
// window closes is folded into one event carrying the last sequence id and
// the number of folded changes. The output closes when in closes (after a
// final flush) or when ctx is done.
func Debounce(ctx context.Context, in <-chan Event, window time.Duration) <-chan Event {
	out := make(chan Event, 1)

	go func() {
		defer close(out)

		var (
			pending bool
			batch   Event
			timer   *time.Timer
			fire    <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		flush := func() {
			if !pending {
				return
			}
			pending = false
			fire = nil
			select {
			case out <- batch:
			case <-ctx.Done():
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-in:
				if !ok {
					flush()
					return
				}

				if !pending {
					pending = true
					batch = Event{
						Type:     StoreChanged,
						Entity:   event.Entity,
						EntityID: event.EntityID,
					}
					timer = time.NewTimer(window)
					fire = timer.C
				} else {
					if batch.Entity != event.Entity {
						batch.Entity = EntityAny
					}
					if batch.EntityID != event.EntityID {
						batch.EntityID = 0
					}
				}
				batch.Timestamp = event.Timestamp
				batch.SequenceID = event.SequenceID
				batch.Count++

			case <-fire:
				flush()
			}
		}
	}()

	return out
}
