package components

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
)

var now = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	InitStyles(*colors.Default())
	os.Exit(m.Run())
}

func at(day, hour int) *time.Time {
	t := time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestReadableForeground(t *testing.T) {
	assert.Equal(t, darkText, ReadableForeground("#FFFFFF"))
	assert.Equal(t, darkText, ReadableForeground("#F59E0B"))
	assert.Equal(t, lightText, ReadableForeground("#0F172A"))
	assert.Equal(t, lightText, ReadableForeground(models.DefaultCategoryColor))
	assert.Equal(t, lightText, ReadableForeground("not a color"))
}

func TestFormatDue(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{"today", *at(12, 17), "Today 17:00"},
		{"tomorrow", *at(13, 9), "Tomorrow 09:00"},
		{"future", *at(17, 10), "Jun 17 (5 days from now)"},
		{"past", *at(10, 10), "Jun 10 (2 days ago)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDue(tt.due, now))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, IsOverdue(&models.Task{DueDate: at(12, 8)}, now))
	assert.False(t, IsOverdue(&models.Task{DueDate: at(12, 8), Completed: true}, now))
	assert.False(t, IsOverdue(&models.Task{DueDate: at(12, 18)}, now))
	assert.False(t, IsOverdue(&models.Task{}, now))
}

func TestRenderTaskRow(t *testing.T) {
	task := &models.Task{ID: 1, Title: "Write the quarterly report", Priority: models.PriorityHigh, DueDate: at(12, 17)}
	cat := &models.Category{ID: 2, Name: "Work", Color: "#10B981"}

	row := RenderTaskRow(TaskRowProps{Task: task, Category: cat, Width: 100, Now: now})

	assert.Contains(t, row, "Write the quarterly report")
	assert.Contains(t, row, "[ ]")
	assert.Contains(t, row, "High")
	assert.Contains(t, row, "Work")
	assert.Contains(t, row, "Today 17:00")
	assert.NotContains(t, row, "\n")
}

func TestRenderTaskRow_TruncatesLongTitles(t *testing.T) {
	task := &models.Task{ID: 1, Title: strings.Repeat("long ", 40), Priority: models.PriorityLow, Completed: true}

	row := RenderTaskRow(TaskRowProps{Task: task, Width: 60, Now: now})

	assert.Contains(t, row, "…")
	assert.Contains(t, row, "[x]")
	assert.Contains(t, row, "uncategorized")
	assert.LessOrEqual(t, lipgloss.Width(row), 60)
}

func TestRenderSidebar(t *testing.T) {
	active := 2
	out := RenderSidebar(SidebarProps{
		Categories: []*models.Category{
			{ID: 1, Name: "Personal", Color: "#5B47E0"},
			{ID: 2, Name: "Work", Color: "#10B981"},
		},
		OpenCounts: map[int]int{1: 3, 2: 1},
		ActiveID:   &active,
		Width:      28,
		NewKey:     "N",
	})

	assert.Contains(t, out, "Personal")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "All")
	assert.Contains(t, out, "4") // total open
	assert.Contains(t, out, "N new category")
}

func TestRenderFilterBar(t *testing.T) {
	keys := FilterKeys{Priority: "p", Status: "s", Category: "c", Clear: "x"}

	plain := RenderFilterBar(FilterBarProps{Keys: keys})
	assert.Contains(t, plain, "priority: any")
	assert.NotContains(t, plain, "clear")

	high := models.PriorityHigh
	cat := 2
	active := RenderFilterBar(FilterBarProps{
		Criteria:     filter.Criteria{Priority: &high, CategoryID: &cat, Status: filter.StatusCompleted},
		CategoryName: "Work",
		Keys:         keys,
	})
	assert.Contains(t, active, "high")
	assert.Contains(t, active, "completed")
	assert.Contains(t, active, "Work")
	assert.Contains(t, active, "[x] clear")
}

func TestRenderMarkdown_Placeholder(t *testing.T) {
	out := RenderMarkdown(MarkdownProps{Markdown: "  ", Width: 40, Placeholder: "No notes"})
	assert.Contains(t, out, "No notes")
}

func TestRenderDetail(t *testing.T) {
	task := &models.Task{
		ID:          1,
		Title:       "Review report",
		Description: "Check the **numbers**",
		Priority:    models.PriorityMedium,
		CreatedAt:   now.Add(-time.Hour),
	}

	out := RenderDetail(DetailProps{Task: task, Width: 70, Now: now, EditKey: "e"})

	assert.Contains(t, out, "Review report")
	assert.Contains(t, out, "numbers")
	assert.Contains(t, out, "No notes")
	assert.Contains(t, out, "e edit")
}

func TestRenderProgress(t *testing.T) {
	assert.Contains(t, RenderProgress(50, 30), "50%")
	assert.Contains(t, RenderProgress(150, 30), "100%")
}
