package category

import (
	"context"
	"sync"

	"github.com/thenoetrevino/taskflow/internal/events"
	"github.com/thenoetrevino/taskflow/internal/latency"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Service defines all category store operations
type Service interface {
	// Read operations
	List(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, id int) (*models.Category, error)

	// Write operations
	Create(ctx context.Context, req CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id int) (*models.Category, error)
}

// CreateCategoryRequest encapsulates data for creating a category
type CreateCategoryRequest struct {
	Name  string
	Color string // Optional: defaults to models.DefaultCategoryColor
	Icon  string // Optional: defaults to models.DefaultCategoryIcon
}

// service implements Service over an in-memory slice
type service struct {
	mu         sync.RWMutex
	categories []*models.Category

	latency   *latency.Simulator
	publisher events.EventPublisher
}

// NewService creates a category store seeded with copies of seed
func NewService(seed []*models.Category, opts ...Option) Service {
	s := &service{
		categories: models.CloneCategories(seed),
		latency:    latency.None(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every category in insertion order
func (s *service) List(ctx context.Context) ([]*models.Category, error) {
	if err := s.latency.Wait(ctx, latency.CategoryList); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneCategories(s.categories), nil
}

// Get returns the category or nil when no category has that id
func (s *service) Get(ctx context.Context, id int) (*models.Category, error) {
	if err := s.latency.Wait(ctx, latency.CategoryGet); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.categories[idx].Clone(), nil
	}
	return nil, nil
}

// Create assigns the next id and fills in colour and icon defaults
func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := s.latency.Wait(ctx, latency.CategoryCreate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	cat := &models.Category{
		ID:    s.nextID(),
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
		Order: len(s.categories),
	}
	if cat.Color == "" {
		cat.Color = models.DefaultCategoryColor
	}
	if cat.Icon == "" {
		cat.Icon = models.DefaultCategoryIcon
	}
	s.categories = append(s.categories, cat)
	created := cat.Clone()
	s.mu.Unlock()

	events.Emit(s.publisher, events.CategoryCreated, events.EntityCategory, created.ID)
	return created, nil
}

// Update merges patch into the category; the id is never changed
func (s *service) Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.Category, error) {
	if err := s.latency.Wait(ctx, latency.CategoryUpdate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, notFound(id)
	}

	updated := s.categories[idx].Clone()
	patch.Apply(updated)
	updated.ID = s.categories[idx].ID
	s.categories[idx] = updated
	result := updated.Clone()
	s.mu.Unlock()

	events.Emit(s.publisher, events.CategoryUpdated, events.EntityCategory, id)
	return result, nil
}

// Delete removes the category and returns it. Tasks referencing it are left alone.
func (s *service) Delete(ctx context.Context, id int) (*models.Category, error) {
	if err := s.latency.Wait(ctx, latency.CategoryDelete); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, notFound(id)
	}

	removed := s.categories[idx]
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	s.mu.Unlock()

	events.Emit(s.publisher, events.CategoryDeleted, events.EntityCategory, id)
	return removed.Clone(), nil
}

func (s *service) indexOf(id int) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) nextID() int {
	maxID := 0
	for _, c := range s.categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}
