package tui

import (
	"github.com/google/uuid"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// dataLoadedMsg carries a fresh snapshot of both stores
type dataLoadedMsg struct {
	tasks      []*models.Task
	categories []*models.Category
}

// loadFailedMsg reports that the snapshot could not be fetched
type loadFailedMsg struct {
	err error
}

// storeChangedMsg is delivered when the (debounced) change bus fires
type storeChangedMsg struct {
	event events.Event
}

// mutationDoneMsg reports a successful store write
type mutationDoneMsg struct {
	toast string
	level state.NotificationLevel
}

// mutationFailedMsg reports a failed store write
type mutationFailedMsg struct {
	action string
	err    error
}

// toastExpiredMsg asks the model to drop one toast
type toastExpiredMsg struct {
	id uuid.UUID
}
