package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/tui/theme"
)

// TitleStyle renders column headers.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

// ModalStyle frames dialogs drawn over the board.
func ModalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)
}
