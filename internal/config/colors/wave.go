package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: "#957FB8", // oniViolet

		// Semantic colors
		Create: "#98BB6C", // springGreen
		Edit:   "#7E9CD8", // crystalBlue
		Delete: "#FF5D62", // peachRed

		// UI element colors
		Border:     "#54546D", // sumiInk4
		SelectedBg: "#223249", // waveBlue1

		// Text colors
		Title:     "#7E9CD8",
		Subtle:    "#727169", // fujiGray
		Normal:    "#DCD7BA", // fujiWhite
		Completed: "#727169",
		Overdue:   "#E82424", // samuraiRed

		// Priorities
		PriorityHigh:   "#E82424",
		PriorityMedium: "#FF9E3B", // roninYellow
		PriorityLow:    "#7AA89F", // waveAqua2

		// Notification colors
		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B",
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B", // winterRed

		// Status bar
		StatusBarBg:   "#957FB8",
		StatusBarText: "#1F1F28", // sumiInk1
	}
}
