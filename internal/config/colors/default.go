package colors

// Default returns the default color scheme (indigo theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#5B47E0",

		// Semantic
		Create: "#00C896",
		Edit:   "#4A90E2",
		Delete: "#FF5A5A",

		// UI elements
		Border:     "#475569",
		SelectedBg: "#334155",

		// Text
		Title:     "#8B7FE8",
		Subtle:    "#64748B",
		Normal:    "#E2E8F0",
		Completed: "#64748B",
		Overdue:   "#FF5A5A",

		// Priorities
		PriorityHigh:   "#FF5A5A",
		PriorityMedium: "#FFB547",
		PriorityLow:    "#00D4AA",

		// Notifications
		InfoFg:    "#4A90E2",
		InfoBg:    "#0F172A",
		WarningFg: "#FFB547",
		WarningBg: "#1E293B",
		ErrorFg:   "#FF5A5A",
		ErrorBg:   "#1E293B",

		// Status bar
		StatusBarBg:   "#5B47E0", // Matches accent
		StatusBarText: "#F8F9FC",
	}
}
