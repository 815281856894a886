// Package seed provides the data the stores start with.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskflow/internal/dates"
	"github.com/thenoetrevino/taskflow/internal/models"
)

//go:embed tasks.yaml
var embeddedTasks []byte

//go:embed categories.yaml
var embeddedCategories []byte

// Data is the initial content of both stores
type Data struct {
	Tasks      []*models.Task
	Categories []*models.Category
}

// file is the on-disk seed layout. Either section may be omitted.
type file struct {
	Tasks      []taskEntry        `yaml:"tasks"`
	Categories []*models.Category `yaml:"categories"`
}

// taskEntry is a task as written in a seed file. Due dates are either absolute
// (Due, RFC 3339) or relative to load time (DueInDays + DueTime).
type taskEntry struct {
	ID             int             `yaml:"id"`
	Title          string          `yaml:"title"`
	Description    string          `yaml:"description"`
	Notes          string          `yaml:"notes"`
	Completed      bool            `yaml:"completed"`
	CategoryID     int             `yaml:"category_id"`
	Priority       models.Priority `yaml:"priority"`
	Due            string          `yaml:"due"`
	DueInDays      *int            `yaml:"due_in_days"`
	DueTime        string          `yaml:"due_time"`
	CreatedDaysAgo int             `yaml:"created_days_ago"`
	Order          *int            `yaml:"order"`
}

// Default returns the embedded seed data resolved against now
func Default(now time.Time) (*Data, error) {
	var tasks, cats file
	if err := yaml.Unmarshal(embeddedTasks, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse embedded tasks: %w", err)
	}
	if err := yaml.Unmarshal(embeddedCategories, &cats); err != nil {
		return nil, fmt.Errorf("failed to parse embedded categories: %w", err)
	}
	tasks.Categories = cats.Categories
	return tasks.resolve(now)
}

// Load reads seed data from path, or the embedded data when path is empty
func Load(path string, now time.Time) (*Data, error) {
	if path == "" {
		return Default(now)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw, now)
}

// Parse decodes a seed document containing tasks and categories
func Parse(raw []byte, now time.Time) (*Data, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return f.resolve(now)
}

func (f *file) resolve(now time.Time) (*Data, error) {
	data := &Data{
		Tasks:      make([]*models.Task, 0, len(f.Tasks)),
		Categories: make([]*models.Category, 0, len(f.Categories)),
	}

	for _, c := range f.Categories {
		if c == nil {
			continue
		}
		cat := c.Clone()
		if cat.Color == "" {
			cat.Color = models.DefaultCategoryColor
		}
		if cat.Icon == "" {
			cat.Icon = models.DefaultCategoryIcon
		}
		data.Categories = append(data.Categories, cat)
	}

	for i, entry := range f.Tasks {
		task, err := entry.toTask(now)
		if err != nil {
			return nil, fmt.Errorf("task %d (%q): %w", i+1, entry.Title, err)
		}
		if entry.Order == nil {
			task.Order = i
		}
		data.Tasks = append(data.Tasks, task)
	}

	assignIDs(data.Categories, func(c *models.Category) *int { return &c.ID })
	assignIDs(data.Tasks, func(t *models.Task) *int { return &t.ID })

	return data, nil
}

// assignIDs gives every record without an id one past the highest id seen
// so far, counting explicit ids from the whole file first
func assignIDs[T any](records []T, id func(T) *int) {
	highest := 0
	for _, r := range records {
		highest = max(highest, *id(r))
	}
	for _, r := range records {
		if *id(r) == 0 {
			highest++
			*id(r) = highest
		}
	}
}

func (e taskEntry) toTask(now time.Time) (*models.Task, error) {
	task := &models.Task{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Notes:       e.Notes,
		Completed:   e.Completed,
		CategoryID:  e.CategoryID,
		Priority:    models.DefaultPriority,
		CreatedAt:   dates.AddDays(now, -e.CreatedDaysAgo),
	}
	if e.Order != nil {
		task.Order = *e.Order
	}
	if task.CategoryID == 0 {
		task.CategoryID = 1
	}
	if e.Priority != "" {
		p, err := models.ParsePriority(string(e.Priority))
		if err != nil {
			return nil, err
		}
		task.Priority = p
	}

	due, err := e.dueDate(now)
	if err != nil {
		return nil, err
	}
	task.DueDate = due
	return task, nil
}

func (e taskEntry) dueDate(now time.Time) (*time.Time, error) {
	switch {
	case e.Due != "":
		due, err := time.Parse(time.RFC3339, e.Due)
		if err != nil {
			return nil, fmt.Errorf("invalid due %q: %w", e.Due, err)
		}
		return &due, nil
	case e.DueInDays != nil:
		hour, minute, err := parseClock(e.DueTime)
		if err != nil {
			return nil, err
		}
		day := dates.StartOfDay(dates.AddDays(now, *e.DueInDays))
		due := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
		return &due, nil
	default:
		return nil, nil
	}
}

// parseClock reads "HH:MM"; an empty string means end of day (23:59)
func parseClock(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 23, 59, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid due_time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}
