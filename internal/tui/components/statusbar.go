package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar renders a full-width bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	left := StatusBarStyle.Padding(0, 1).Render(props.Left)
	right := StatusBarStyle.Padding(0, 1).Render(props.Right)

	gapWidth := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
