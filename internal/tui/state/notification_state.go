package state

import (
	"time"

	"github.com/google/uuid"
)

// DefaultToastDuration is how long a toast stays visible
const DefaultToastDuration = 3 * time.Second

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Notification is a single toast message.
type Notification struct {
	ID        uuid.UUID
	Level     NotificationLevel
	Message   string
	ExpiresAt time.Time
}

// NotificationState manages toast lifetimes.
// Toasts are keyed by id so an expiry timer can only remove its own toast.
type NotificationState struct {
	notifications []Notification
	ttl           time.Duration
	now           func() time.Time
}

// NewNotificationState creates an empty state using the default toast duration.
func NewNotificationState(now func() time.Time) *NotificationState {
	if now == nil {
		now = time.Now
	}
	return &NotificationState{
		notifications: []Notification{},
		ttl:           DefaultToastDuration,
		now:           now,
	}
}

// TTL returns how long new toasts live.
func (s *NotificationState) TTL() time.Duration {
	return s.ttl
}

// Add appends a toast and returns it.
func (s *NotificationState) Add(level NotificationLevel, message string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.notifications = append(s.notifications, n)
	return n
}

// Dismiss removes the toast with the given id, if still present.
func (s *NotificationState) Dismiss(id uuid.UUID) {
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Expire drops every toast whose deadline has passed.
func (s *NotificationState) Expire() {
	now := s.now()
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if now.Before(n.ExpiresAt) {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications, oldest first.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the newest toast.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
