package task

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/dates"
	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Service defines all task store operations.
// Every returned task is a copy; mutating it never affects the store.
type Service interface {
	// Read operations
	List(ctx context.Context) ([]*models.Task, error)
	Get(ctx context.Context, id int) (*models.Task, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id int) (*models.Task, error)
	ToggleComplete(ctx context.Context, id int) (*models.Task, error)
	Reorder(ctx context.Context, ids []int) ([]*models.Task, error)

	// Filters
	FilterByCategory(ctx context.Context, categoryID int) ([]*models.Task, error)
	FilterDueToday(ctx context.Context) ([]*models.Task, error)
	FilterUpcoming(ctx context.Context) ([]*models.Task, error)
	FilterCompleted(ctx context.Context) ([]*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Zero values fall back to defaults; nothing is validated.
type CreateTaskRequest struct {
	Title       string
	Description string
	Notes       string
	CategoryID  int             // Optional: 0 means DefaultCategoryID
	Priority    models.Priority // Optional: "" means medium
	DueDate     *time.Time
}

// service implements Service over an in-memory slice
type service struct {
	mu    sync.RWMutex
	tasks []*models.Task

	latency   *latency.Simulator
	publisher events.EventPublisher
	now       func() time.Time
}

// NewService creates a task store seeded with copies of seed
func NewService(seed []*models.Task, opts ...Option) Service {
	s := &service{
		tasks:   models.CloneTasks(seed),
		latency: latency.None(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every task in insertion order
func (s *service) List(ctx context.Context) ([]*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskList); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTasks(s.tasks), nil
}

// Get returns the task or nil when no task has that id
func (s *service) Get(ctx context.Context, id int) (*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskGet); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.tasks[idx].Clone(), nil
	}
	return nil, nil
}

// Create assigns the next id and fills in defaults
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskCreate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	task := &models.Task{
		ID:          s.nextID(),
		Title:       req.Title,
		Description: req.Description,
		Notes:       req.Notes,
		Completed:   false,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
		CreatedAt:   s.now(),
		Order:       len(s.tasks),
	}
	if task.CategoryID == 0 {
		task.CategoryID = DefaultCategoryID
	}
	if task.Priority == "" {
		task.Priority = models.DefaultPriority
	}
	if req.DueDate != nil {
		due := *req.DueDate
		task.DueDate = &due
	}
	s.tasks = append(s.tasks, task)
	created := task.Clone()
	s.mu.Unlock()

	events.Emit(s.publisher, events.TaskCreated, events.EntityTask, created.ID)
	return created, nil
}

// Update merges patch into the task; the id is never changed
func (s *service) Update(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskUpdate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, notFound(id)
	}

	updated := s.tasks[idx].Clone()
	patch.Apply(updated)
	updated.ID = s.tasks[idx].ID
	s.tasks[idx] = updated
	result := updated.Clone()
	s.mu.Unlock()

	events.Emit(s.publisher, events.TaskUpdated, events.EntityTask, id)
	return result, nil
}

// Delete removes the task and returns it
func (s *service) Delete(ctx context.Context, id int) (*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskDelete); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, notFound(id)
	}

	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.mu.Unlock()

	events.Emit(s.publisher, events.TaskDeleted, events.EntityTask, id)
	return removed.Clone(), nil
}

// ToggleComplete flips the completed flag
func (s *service) ToggleComplete(ctx context.Context, id int) (*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskToggle); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, notFound(id)
	}

	s.tasks[idx].Completed = !s.tasks[idx].Completed
	result := s.tasks[idx].Clone()
	s.mu.Unlock()

	events.Emit(s.publisher, events.TaskUpdated, events.EntityTask, id)
	return result, nil
}

// Reorder sets each listed task's Order to its position in ids.
// Unknown ids are skipped. Returns the whole collection in insertion order.
func (s *service) Reorder(ctx context.Context, ids []int) ([]*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskReorder); err != nil {
		return nil, err
	}

	s.mu.Lock()
	for position, id := range ids {
		if idx := s.indexOf(id); idx >= 0 {
			s.tasks[idx].Order = position
		}
	}
	result := models.CloneTasks(s.tasks)
	s.mu.Unlock()

	events.Emit(s.publisher, events.TasksReordered, events.EntityTask, 0)
	return result, nil
}

// FilterByCategory returns tasks in the category, order preserved
func (s *service) FilterByCategory(ctx context.Context, categoryID int) ([]*models.Task, error) {
	return s.filter(ctx, func(t *models.Task) bool {
		return t.CategoryID == categoryID
	})
}

// FilterDueToday returns tasks due on the current local calendar day
func (s *service) FilterDueToday(ctx context.Context) ([]*models.Task, error) {
	now := s.now()
	return s.filter(ctx, func(t *models.Task) bool {
		return t.DueDate != nil && dates.SameDay(*t.DueDate, now)
	})
}

// FilterUpcoming returns tasks due after today, earliest first
func (s *service) FilterUpcoming(ctx context.Context) ([]*models.Task, error) {
	now := s.now()
	tasks, err := s.filter(ctx, func(t *models.Task) bool {
		return t.DueDate != nil && dates.AfterToday(*t.DueDate, now)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
	return tasks, nil
}

// FilterCompleted returns completed tasks, order preserved
func (s *service) FilterCompleted(ctx context.Context) ([]*models.Task, error) {
	return s.filter(ctx, func(t *models.Task) bool {
		return t.Completed
	})
}

func (s *service) filter(ctx context.Context, keep func(*models.Task) bool) ([]*models.Task, error) {
	if err := s.latency.Wait(ctx, latency.TaskFilter); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*models.Task{}
	for _, t := range s.tasks {
		if keep(t) {
			result = append(result, t.Clone())
		}
	}
	return result, nil
}

// indexOf returns the slice index of id or -1. Caller holds the lock.
func (s *service) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns max(existing ids, 0) + 1. Caller holds the lock.
func (s *service) nextID() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
