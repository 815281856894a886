package theme

import (
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Title          string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	Border         string
	SelectedBg     string
	Completed      string
	Overdue        string
	PriorityHigh   string
	PriorityMedium string
	PriorityLow    string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	Border = colors.Border
	SelectedBg = colors.SelectedBg
	Completed = colors.Completed
	Overdue = colors.Overdue
	PriorityHigh = colors.PriorityHigh
	PriorityMedium = colors.PriorityMedium
	PriorityLow = colors.PriorityLow
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}

// PriorityColor returns the marker color for a priority
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return PriorityHigh
	case models.PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}
