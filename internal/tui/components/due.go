package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/thenoetrevino/taskflow/internal/dates"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// FormatDue describes a due date relative to now:
// "Today 17:00", "Tomorrow 09:00" or "Jun 17 (5 days from now)".
func FormatDue(due, now time.Time) string {
	due = due.In(now.Location())
	switch {
	case dates.SameDay(due, now):
		return "Today " + due.Format("15:04")
	case dates.SameDay(due, dates.StartOfTomorrow(now)):
		return "Tomorrow " + due.Format("15:04")
	}
	return due.Format("Jan 2") + " (" + humanize.RelTime(due, now, "ago", "from now") + ")"
}

// IsOverdue reports whether an open task is past its due time
func IsOverdue(task *models.Task, now time.Time) bool {
	return task.DueDate != nil && !task.Completed && task.DueDate.Before(now)
}

// RenderDue renders the due date, highlighting overdue tasks
func RenderDue(task *models.Task, now time.Time) string {
	if task.DueDate == nil {
		return ""
	}

	color := theme.Subtle
	if IsOverdue(task, now) {
		color = theme.Overdue
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("◷ " + FormatDue(*task.DueDate, now))
}
