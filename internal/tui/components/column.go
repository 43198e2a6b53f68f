package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/kanban"
	"github.com/thenoetrevino/applyboard/internal/tui/theme"
)

// ColumnProps describes one board column.
type ColumnProps struct {
	View        kanban.ColumnView
	Width       int
	Height      int  // total box height, 0 for auto
	Selected    bool // keyboard focus is in this column
	Hovered     bool // a dragged card is over this column
	SelectedIdx int  // selected card, -1 for none
	DraggedID   string
}

// RenderColumn renders a column with its title, count and cards.
//
// Layout:
//
//	{Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	...
//	▼ (if more cards below)
func RenderColumn(p ColumnProps) string {
	cards := p.View.Companies
	header := TitleStyle().
		Foreground(lipgloss.Color(p.View.Config.Color)).
		Render(fmt.Sprintf("%s (%d)", p.View.Config.Title, len(cards)))
	lines := []string{header}

	if len(cards) == 0 {
		lines = append(lines, subtleStyle().Italic(true).Padding(1, 0).Render("No companies"))
	} else {
		// border(2) + header(1) + indicators(2)
		const overhead = 5
		visible := len(cards)
		if p.Height > 0 {
			visible = max((p.Height-overhead)/CardHeight, 1)
		}
		offset := scrollOffset(p.SelectedIdx, visible, len(cards))
		end := min(offset+visible, len(cards))

		if offset > 0 {
			lines = append(lines, subtleStyle().Render("▲ more above"))
		} else {
			lines = append(lines, "")
		}
		for i := offset; i < end; i++ {
			lines = append(lines, RenderCard(CardProps{
				Company:  cards[i],
				Width:    p.Width - 4,
				Selected: p.Selected && i == p.SelectedIdx,
				Dragged:  cards[i].ID == p.DraggedID,
			}))
		}
		if end < len(cards) {
			lines = append(lines, subtleStyle().Render("▼ more below"))
		}
	}

	border := p.View.Config.Color
	switch {
	case p.Hovered:
		border = p.View.Config.Accent
	case p.Selected:
		border = theme.Highlight
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(p.Width)
	if p.Hovered {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// scrollOffset keeps the selected card in view.
func scrollOffset(selected, visible, total int) int {
	if selected < visible || total <= visible {
		return 0
	}
	return min(selected-visible+1, total-visible)
}
