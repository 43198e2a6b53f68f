package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/tui/theme"
)

// CardHeight is the fixed height of a company card, borders included.
const CardHeight = 5

// CardProps describes one company card.
type CardProps struct {
	Company  *models.Company
	Width    int
	Selected bool
	Dragged  bool // picked up and waiting for a drop
}

// RenderCard renders a company card:
//
//	Name
//	Position · deadline
func RenderCard(p CardProps) string {
	inner := max(p.Width-4, 4)

	name := truncate(p.Company.Name, inner)
	if p.Dragged {
		name = truncate("⇄ "+p.Company.Name, inner)
	}

	details := p.Company.Position
	if p.Company.Deadline != "" {
		details += " · " + deadlineDate(p.Company.Deadline)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal)).Render(name),
		subtleStyle().Render(truncate(details, inner)),
	)

	border := theme.Subtle
	switch {
	case p.Dragged:
		border = theme.Highlight
	case p.Selected:
		border = theme.Title
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(p.Width)
	if p.Selected {
		style = style.Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(content)
}

// deadlineDate shows only the date part of an RFC3339 deadline.
func deadlineDate(deadline string) string {
	if i := strings.IndexByte(deadline, 'T'); i > 0 {
		return deadline[:i]
	}
	return deadline
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
