package config

import "github.com/thenoetrevino/taskflow/internal/config/colors"

// ColorScheme is the theme section of the config
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (indigo theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}
