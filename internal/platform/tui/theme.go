package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the menu screens.
// It is an explicit value passed at construction, not process-wide state.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Accent   lipgloss.Style

	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	Footer         lipgloss.Style

	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style
}

// DefaultTheme returns the default visual theme: dark blue board, golden
// accents, light card faces.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),

		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Footer:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}
