package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

const (
	darkText  = "#0F172A"
	lightText = "#F8FAFC"
)

// ReadableForeground picks dark or light text for a background color
func ReadableForeground(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return lightText
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return darkText
	}
	return lightText
}

// RenderCategoryBadge renders the category name on its own color.
// A missing category renders as a muted placeholder.
func RenderCategoryBadge(category *models.Category) string {
	if category == nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("uncategorized")
	}

	color := category.Color
	if _, err := colorful.Hex(color); err != nil {
		color = models.DefaultCategoryColor
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ReadableForeground(color))).
		Padding(0, 1).
		Render(category.Name)
}

// RenderColorDot renders a single colored bullet for the sidebar
func RenderColorDot(hex string) string {
	if _, err := colorful.Hex(hex); err != nil {
		hex = models.DefaultCategoryColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
