package tui

import (
	"time"

	"github.com/thenoetrevino/taskflow/internal/dates"
	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// categoryOnly keeps just the category predicate; the other filters
// belong to the All Tasks page
func categoryOnly(c filter.Criteria) filter.Criteria {
	return filter.Criteria{CategoryID: c.CategoryID}
}

func orderedTasks(tasks []*models.Task) []*models.Task {
	return filter.ByOrder(tasks)
}

func filterTodayTasks(tasks []*models.Task, now time.Time) []*models.Task {
	due := []*models.Task{}
	for _, t := range tasks {
		if t.DueDate != nil && dates.SameDay(*t.DueDate, now) {
			due = append(due, t)
		}
	}
	return filter.TodayView(due)
}

func filterUpcomingTasks(tasks []*models.Task, now time.Time) []*models.Task {
	out := []*models.Task{}
	for _, t := range tasks {
		if t.DueDate != nil && dates.AfterToday(*t.DueDate, now) {
			out = append(out, t)
		}
	}
	return out
}

func archiveTasks(tasks []*models.Task, query string) []*models.Task {
	return filter.ArchiveView(tasks, query)
}

// upcomingGroups returns the Upcoming page grouped by day
func (m *Model) upcomingGroups() []filter.Group {
	now := m.App.Now()
	tasks := categoryOnly(m.UiState.Criteria()).Apply(m.AppState.Tasks())
	return filter.UpcomingGroups(filterUpcomingTasks(tasks, now), now)
}

// nextPriority cycles any -> high -> medium -> low -> any
func nextPriority(p *models.Priority) *models.Priority {
	order := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	if p == nil {
		next := order[0]
		return &next
	}
	for i, candidate := range order {
		if candidate == *p && i+1 < len(order) {
			next := order[i+1]
			return &next
		}
	}
	return nil
}

// nextCategory cycles all -> each category in turn -> all
func nextCategory(id *int, categories []*models.Category) *int {
	if len(categories) == 0 {
		return nil
	}
	if id == nil {
		next := categories[0].ID
		return &next
	}
	for i, c := range categories {
		if c.ID == *id && i+1 < len(categories) {
			next := categories[i+1].ID
			return &next
		}
	}
	return nil
}

// reorderedIDs swaps the task at visible[idx] with its neighbour at
// visible[idx+delta] inside the full ordering and returns the new id sequence
func reorderedIDs(all, visible []*models.Task, idx, delta int) ([]int, bool) {
	target := idx + delta
	if idx < 0 || idx >= len(visible) || target < 0 || target >= len(visible) {
		return nil, false
	}
	a, b := visible[idx].ID, visible[target].ID

	ordered := filter.ByOrder(all)
	ids := make([]int, len(ordered))
	for i, t := range ordered {
		switch t.ID {
		case a:
			ids[i] = b
		case b:
			ids[i] = a
		default:
			ids[i] = t.ID
		}
	}
	return ids, true
}
