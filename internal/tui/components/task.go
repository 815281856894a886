package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type TaskRowProps struct {
	Task     *models.Task
	Category *models.Category
	Selected bool
	Width    int
	Now      time.Time
}

// RenderTaskRow renders a task as a single line
//
//	▌ [x] Title of the task…      ● High   Work   ◷ Today 17:00
func RenderTaskRow(props TaskRowProps) string {
	task := props.Task

	cursor := "  "
	if props.Selected {
		cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Render("▌ ")
	}

	checkbox := "[ ]"
	if task.Completed {
		checkbox = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).Render("[x]")
	}

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.PriorityColor(task.Priority))).
		Render("● " + task.Priority.Label())

	meta := lipgloss.JoinHorizontal(lipgloss.Top,
		priority, "  ",
		RenderCategoryBadge(props.Category),
	)
	if due := RenderDue(task, props.Now); due != "" {
		meta += "  " + due
	}

	// Title takes whatever space is left
	fixed := lipgloss.Width(cursor) + lipgloss.Width(checkbox) + 1 + lipgloss.Width(meta) + 2
	titleWidth := props.Width - fixed
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := truncate.StringWithTail(task.Title, uint(titleWidth), "…")
	title += strings.Repeat(" ", max(titleWidth-lipgloss.Width(title), 0))

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if task.Completed {
		titleStyle = titleStyle.Foreground(lipgloss.Color(theme.Completed)).Strikethrough(true)
	}
	if props.Selected {
		titleStyle = titleStyle.Bold(true)
	}

	row := cursor + checkbox + " " + titleStyle.Render(title) + "  " + meta
	if props.Selected {
		return lipgloss.NewStyle().Background(lipgloss.Color(theme.SelectedBg)).Render(row)
	}
	return row
}
