package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles shared by the non-game screens.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	ConfirmText lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")), // Bright yellow
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		ConfirmText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	}
}

// centerBlock places a rendered block in the middle of the terminal.
func centerBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
