package state

import (
	"github.com/thenoetrevino/taskflow/internal/models"
)

// AppState holds the data loaded from the stores.
// It is replaced wholesale on every reload; views derive from it.
type AppState struct {
	tasks      []*models.Task
	categories []*models.Category

	loading bool
	loadErr error
}

// NewAppState creates an AppState that is waiting for its first load.
func NewAppState() *AppState {
	return &AppState{
		tasks:      []*models.Task{},
		categories: []*models.Category{},
		loading:    true,
	}
}

// Tasks returns all loaded tasks.
func (s *AppState) Tasks() []*models.Task {
	return s.tasks
}

// Categories returns all loaded categories.
func (s *AppState) Categories() []*models.Category {
	return s.categories
}

// SetData replaces both collections and clears the loading and error flags.
func (s *AppState) SetData(tasks []*models.Task, categories []*models.Category) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	s.tasks = tasks
	s.categories = categories
	s.loading = false
	s.loadErr = nil
}

// Loading reports whether the first load (or a retry) is in flight.
func (s *AppState) Loading() bool {
	return s.loading
}

// SetLoading marks a load as started.
func (s *AppState) SetLoading() {
	s.loading = true
	s.loadErr = nil
}

// Err returns the last load failure.
func (s *AppState) Err() error {
	return s.loadErr
}

// SetErr records a load failure.
func (s *AppState) SetErr(err error) {
	s.loading = false
	s.loadErr = err
}

// CategoryByID returns the category or nil when it no longer exists.
func (s *AppState) CategoryByID(id int) *models.Category {
	for _, c := range s.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// TaskByID returns the task or nil.
func (s *AppState) TaskByID(id int) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
