package events

import "log/slog"

// Emit publishes an event if a publisher is configured.
// A publish failure is logged, never returned.
func Emit(publisher EventPublisher, eventType EventType, entity Entity, entityID int) {
	if publisher == nil {
		return // Silently skip if no publisher (e.g., in tests)
	}

	err := publisher.Publish(Event{
		Type:     eventType,
		Entity:   entity,
		EntityID: entityID,
	})
	if err != nil {
		slog.Warn("event publish failed",
			"event_type", eventType,
			"entity", entity,
			"entity_id", entityID,
			"error", err)
	}
}
