package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type HeaderProps struct {
	Title    string
	Subtitle string
	Stats    filter.Stats
	Width    int
}

// RenderHeader renders the page title, its subtitle and the task counts
func RenderHeader(props HeaderProps) string {
	left := TitleStyle.Render(props.Title)
	if props.Subtitle != "" {
		left += "  " + SubtleStyle.Render(props.Subtitle)
	}

	right := SubtleStyle.Render(fmt.Sprintf("%d total · %d done · %d remaining",
		props.Stats.Total, props.Stats.Completed, props.Stats.Remaining))

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// RenderProgress renders a progress bar followed by its percentage
func RenderProgress(percent, width int) string {
	percent = min(max(percent, 0), 100)
	label := fmt.Sprintf(" %d%%", percent)
	barWidth := max(width-len(label), 10)
	filled := barWidth * percent / 100

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)).Render(strings.Repeat("░", barWidth-filled))
	return bar + SubtleStyle.Render(label)
}

// RenderEmptyState renders a centered message for an empty list
func RenderEmptyState(message, hint string, width int) string {
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(message)
	if hint != "" {
		body += "\n" + SubtleStyle.Render(hint)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(2, 0).
		Render(body)
}
