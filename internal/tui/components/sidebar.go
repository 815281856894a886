package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type SidebarProps struct {
	Categories []*models.Category
	OpenCounts map[int]int // incomplete tasks per category id
	ActiveID   *int        // category filter, nil for all
	Width      int
	Height     int
	NewKey     string
}

// RenderSidebar renders the category list with open-task counts
func RenderSidebar(props SidebarProps) string {
	inner := max(props.Width-4, 10) // border + padding

	lines := []string{TitleStyle.Render("Categories"), ""}

	total := 0
	for _, n := range props.OpenCounts {
		total += n
	}
	lines = append(lines, sidebarLine("○", "All", total, props.ActiveID == nil, inner))

	for _, c := range props.Categories {
		active := props.ActiveID != nil && *props.ActiveID == c.ID
		lines = append(lines, sidebarLine(RenderColorDot(c.Color), c.Name, props.OpenCounts[c.ID], active, inner))
	}

	if props.NewKey != "" {
		lines = append(lines, "", SubtleStyle.Render(props.NewKey+" new category"))
	}

	style := SidebarStyle.Width(props.Width - 2)
	if props.Height > 2 {
		style = style.Height(props.Height - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func sidebarLine(icon, name string, count int, active bool, width int) string {
	countText := fmt.Sprintf("%d", count)
	nameWidth := max(width-lipgloss.Width(icon)-lipgloss.Width(countText)-2, 1)
	name = truncate.StringWithTail(name, uint(nameWidth), "…")
	pad := strings.Repeat(" ", max(nameWidth-lipgloss.Width(name), 0))

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if active {
		nameStyle = nameStyle.Foreground(lipgloss.Color(theme.Highlight)).Bold(true)
	}

	return icon + " " + nameStyle.Render(name) + pad + " " + SubtleStyle.Render(countText)
}
