// Package lipgloss renders compiled theme artifacts using the Lipgloss
// styling library.
package lipgloss

import "github.com/charmbracelet/lipgloss"

// Theme holds the UI colors used around the swatches.
type Theme struct {
	Title  lipgloss.Color // Theme headings
	Label  lipgloss.Color // Color names
	Muted  lipgloss.Color // Values, counts, borders
	Accent lipgloss.Color // Selection in the preview
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() Theme {
	return DarkTheme()
}

// DarkTheme returns UI colors for dark terminals (Catppuccin Mocha).
func DarkTheme() Theme {
	return Theme{
		Title:  "#f9e2af",
		Label:  "#cdd6f4",
		Muted:  "#6c7086",
		Accent: "#89b4fa",
	}
}

// LightTheme returns UI colors for light terminals (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Title:  "#df8e1d",
		Label:  "#4c4f69",
		Muted:  "#9ca0b0",
		Accent: "#1e66f5",
	}
}
