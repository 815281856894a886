package task

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

const titleWidth = 36

// categoryLookup resolves category ids for display
type categoryLookup map[int]*models.Category

func newCategoryLookup(categories []*models.Category) categoryLookup {
	lookup := make(categoryLookup, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c
	}
	return lookup
}

// formatDue renders "Jan 2 15:04 (3 hours from now)"
func formatDue(due, now time.Time) string {
	local := due.In(now.Location())
	return fmt.Sprintf("%s (%s)", local.Format("Jan 2 15:04"), humanize.RelTime(local, now, "ago", "from now"))
}

// renderRow renders one task as a single line
func renderRow(t *models.Task, categories categoryLookup, now time.Time) string {
	mark := "○"
	title := truncate.StringWithTail(t.Title, titleWidth, "…")
	title += strings.Repeat(" ", max(titleWidth-lipgloss.Width(title), 0))
	if t.Completed {
		mark = "✓"
		title = styles.DoneStyle.Render(title)
	} else {
		title = styles.ValueStyle.Render(title)
	}

	parts := []string{
		fmt.Sprintf("  %s %s", mark, styles.SubtitleStyle.Render(fmt.Sprintf("#%-3d", t.ID))),
		title,
		styles.RenderPriority(t.Priority),
		styles.RenderCategoryChip(categories[t.CategoryID]),
	}

	if t.DueDate != nil {
		due := "due " + formatDue(*t.DueDate, now)
		if !t.Completed && t.DueDate.Before(now) {
			due = styles.OverdueStyle.Render(due)
		} else {
			due = styles.SubtitleStyle.Render(due)
		}
		parts = append(parts, due)
	}
	return strings.Join(parts, "  ")
}

// writeTaskList writes a heading and one row per task
func writeTaskList(w io.Writer, heading string, tasks []*models.Task, categories categoryLookup, now time.Time) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}

	fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", heading, len(tasks))))
	fmt.Fprintln(w)
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, renderRow(t, categories, now)); err != nil {
			return err
		}
	}
	return nil
}
