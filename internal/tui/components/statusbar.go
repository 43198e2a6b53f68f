package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Hint  string // right side, mode dependent
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := subtleStyle()

	leftRendered := style.Render("Applyboard - Job Applications")
	rightRendered := style.Render(props.Hint)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
