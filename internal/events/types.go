package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	TaskCreated     EventType = "task_created"
	TaskUpdated     EventType = "task_updated"
	TaskDeleted     EventType = "task_deleted"
	TasksReordered  EventType = "tasks_reordered"
	CategoryCreated EventType = "category_created"
	CategoryUpdated EventType = "category_updated"
	CategoryDeleted EventType = "category_deleted"

	// StoreChanged is emitted by Debounce for a coalesced burst
	StoreChanged EventType = "store_changed"
)

// Entity names the record type an event refers to
type Entity string

const (
	EntityTask     Entity = "task"
	EntityCategory Entity = "category"
	// EntityAny marks a coalesced batch touching more than one entity type
	EntityAny Entity = ""
)

// Event represents a store change notification
type Event struct {
	Type       EventType
	Entity     Entity
	EntityID   int       // 0 when the change spans several records
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing per bus
	Count      int       // Number of changes folded into this event (Debounce only)
}
