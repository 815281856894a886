package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type DetailProps struct {
	Task     *models.Task
	Category *models.Category
	Width    int
	Now      time.Time
	EditKey  string
}

// RenderDetail renders the task detail modal
//
//	╭──────────────────────────────╮
//	│ Title                        │
//	│ status · priority · category │
//	│ Due / Created                │
//	│ Description (markdown)       │
//	│ Notes (markdown)             │
//	╰──────────────────────────────╯
func RenderDetail(props DetailProps) string {
	task := props.Task
	inner := max(props.Width-6, 20) // border + padding

	title := TitleStyle.Render(wordwrap.String(task.Title, inner))

	status := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render("Open")
	if task.Completed {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).Render("Completed")
	}
	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.PriorityColor(task.Priority))).
		Render(task.Priority.Label() + " priority")
	meta := strings.Join([]string{status, priority, RenderCategoryBadge(props.Category)}, SubtleStyle.Render(" · "))

	dates := SubtleStyle.Render("Created " + task.CreatedAt.In(props.Now.Location()).Format("Mon Jan 2 15:04"))
	if task.DueDate != nil {
		dates = RenderDue(task, props.Now) + "\n" + dates
	}

	sections := []string{
		title,
		meta,
		dates,
		"",
		SubtleStyle.Bold(true).Render("Description"),
		RenderMarkdown(MarkdownProps{Markdown: task.Description, Width: inner, Placeholder: "No description"}),
		"",
		SubtleStyle.Bold(true).Render("Notes"),
		RenderMarkdown(MarkdownProps{Markdown: task.Notes, Width: inner, Placeholder: "No notes"}),
	}

	footer := "esc close"
	if props.EditKey != "" {
		footer = props.EditKey + " edit · " + footer
	}
	sections = append(sections, "", SubtleStyle.Render(footer))

	return ModalStyle.Width(inner + 4).Render(strings.Join(sections, "\n"))
}
