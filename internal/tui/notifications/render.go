package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/tui/state"
)

// Render renders a toast with the notification title as its header.
func Render(severity Severity, title, message string) string {
	style := severity.style()

	headerText := style.icon + " " + title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	content := header
	if message != "" {
		body := lipgloss.NewStyle().
			Foreground(lipgloss.Color(style.foreground)).
			Width(maxWidth).
			Render(message)
		content = lipgloss.JoinVertical(lipgloss.Left, header, body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderToast renders a toast from state.
func RenderToast(t state.Toast) string {
	return Render(SeverityOf(t.Level), t.Title, t.Message)
}
