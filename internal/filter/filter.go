// Package filter derives the task views shown on each page from a task list.
// Every function is pure: it never mutates its input and returns new slices.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/thenoetrevino/taskflow/internal/dates"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Status restricts tasks by completion
type Status int

const (
	StatusAny Status = iota
	StatusIncomplete
	StatusCompleted
)

// String returns the status as shown in the filter bar
func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Next cycles any -> incomplete -> completed -> any
func (s Status) Next() Status {
	return (s + 1) % 3
}

// ParseStatus accepts "all", "any", "incomplete", "active", "completed", "done"
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return StatusAny, true
	case "incomplete", "active", "open":
		return StatusIncomplete, true
	case "completed", "done":
		return StatusCompleted, true
	}
	return StatusAny, false
}

// Criteria is the set of active filters. The zero value matches everything.
type Criteria struct {
	Priority   *models.Priority
	CategoryID *int
	Status     Status
}

// Active reports whether any predicate is set
func (c Criteria) Active() bool {
	return c.Priority != nil || c.CategoryID != nil || c.Status != StatusAny
}

// Match reports whether the task satisfies every set predicate
func (c Criteria) Match(t *models.Task) bool {
	if c.Priority != nil && t.Priority != *c.Priority {
		return false
	}
	if c.CategoryID != nil && t.CategoryID != *c.CategoryID {
		return false
	}
	switch c.Status {
	case StatusCompleted:
		return t.Completed
	case StatusIncomplete:
		return !t.Completed
	}
	return true
}

// Apply returns the tasks matching c, order preserved
func (c Criteria) Apply(tasks []*models.Task) []*models.Task {
	out := []*models.Task{}
	for _, t := range tasks {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByOrder returns tasks sorted by their Order field (stable)
func ByOrder(tasks []*models.Task) []*models.Task {
	out := append([]*models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// TodayView sorts due-today tasks by priority (high first) then due time
func TodayView(tasks []*models.Task) []*models.Task {
	out := append([]*models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].Priority.Weight(), out[j].Priority.Weight()
		if wi != wj {
			return wi > wj
		}
		return dueBefore(out[i], out[j])
	})
	return out
}

// Group is one calendar day on the Upcoming page
type Group struct {
	Day   time.Time
	Label string
	Tasks []*models.Task
}

// UpcomingGroups buckets tasks by due day, earliest day first.
// Tasks without a due date are skipped.
func UpcomingGroups(tasks []*models.Task, now time.Time) []Group {
	byDay := map[time.Time][]*models.Task{}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		day := dates.StartOfDay(t.DueDate.In(now.Location()))
		byDay[day] = append(byDay[day], t)
	}

	groups := make([]Group, 0, len(byDay))
	for day, list := range byDay {
		sorted := append([]*models.Task(nil), list...)
		sort.SliceStable(sorted, func(i, j int) bool { return dueBefore(sorted[i], sorted[j]) })
		groups = append(groups, Group{Day: day, Label: DayLabel(day, now), Tasks: sorted})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Day.Before(groups[j].Day) })
	return groups
}

// DayLabel returns "Today", "Tomorrow" or a date like "Monday, January 2"
func DayLabel(day, now time.Time) string {
	switch {
	case dates.SameDay(day, now):
		return "Today"
	case dates.SameDay(day, dates.StartOfTomorrow(now)):
		return "Tomorrow"
	}
	return day.Format("Monday, January 2")
}

// ArchiveView returns completed tasks whose title contains query
// (case-insensitive), newest first
func ArchiveView(tasks []*models.Task, query string) []*models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	out := []*models.Task{}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Stats counts tasks by completion
type Stats struct {
	Total     int
	Completed int
	Remaining int
}

// Progress returns the completed percentage rounded to the nearest integer,
// 0 for an empty set
func (s Stats) Progress() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Completed*100 + s.Total/2) / s.Total
}

// Count computes Stats for tasks
func Count(tasks []*models.Task) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	s.Remaining = s.Total - s.Completed
	return s
}

// OpenCountsByCategory returns the number of incomplete tasks per category id
func OpenCountsByCategory(tasks []*models.Task) map[int]int {
	counts := map[int]int{}
	for _, t := range tasks {
		if !t.Completed {
			counts[t.CategoryID]++
		}
	}
	return counts
}

// CompletedThisWeek counts completed tasks created within the last seven days
func CompletedThisWeek(tasks []*models.Task, now time.Time) int {
	cutoff := dates.AddDays(now, -7)
	n := 0
	for _, t := range tasks {
		if t.Completed && t.CreatedAt.After(cutoff) {
			n++
		}
	}
	return n
}

func dueBefore(a, b *models.Task) bool {
	switch {
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	}
	return a.DueDate.Before(*b.DueDate)
}
