package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/tui/components"
	"github.com/thenoetrevino/applyboard/internal/tui/notifications"
	"github.com/thenoetrevino/applyboard/internal/tui/state"
)

const minColumnWidth = 24

// View renders the board with any dialog and toasts layered on top.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	width, height := m.uiState.Width(), m.uiState.Height()
	if width == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBoard(width, height))}

	if modal := m.renderModal(width); modal != "" {
		x := max((width-lipgloss.Width(modal))/2, 0)
		y := max((height-lipgloss.Height(modal))/2, 0)
		layers = append(layers, lipgloss.NewLayer(modal).X(x).Y(y).Z(10))
	}

	for _, l := range m.notificationState.GetLayers(width, height, notifications.RenderToast) {
		layers = append(layers, l.Z(20))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderBoard lays out as many columns as fit, scrolled so the selected
// one is visible.
func (m Model) renderBoard(width, height int) string {
	cols := m.columns()
	ctrl := m.board.Controller()
	dragged, _ := ctrl.DraggedItem()
	hovered, _ := ctrl.HoveredColumn()

	perRow := max(min(width/minColumnWidth, len(cols)), 1)
	colWidth := width/perRow - 2
	first := max(m.uiState.SelectedColumn()-perRow+1, 0)
	last := min(first+perRow, len(cols))

	rendered := make([]string, 0, perRow)
	for i := first; i < last; i++ {
		selected := i == m.uiState.SelectedColumn()
		idx := -1
		if selected {
			idx = m.uiState.SelectedCard()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			View:        cols[i],
			Width:       colWidth,
			Height:      height - 2,
			Selected:    selected,
			Hovered:     hovered != "" && cols[i].Config.Status == hovered,
			SelectedIdx: idx,
			DraggedID:   dragged,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	lines := strings.Split(board, "\n")
	if len(lines) > height-1 {
		lines = lines[:max(height-1, 1)]
	}
	footer := components.RenderStatusBar(components.StatusBarProps{Width: width, Hint: m.hint()})
	return strings.Join(lines, "\n") + "\n" + footer
}

func (m Model) renderModal(width int) string {
	switch m.uiState.Mode() {
	case state.AddCompanyMode:
		title := ""
		if col, ok := m.currentColumn(); ok {
			title = col.Config.Title
		}
		return components.RenderAddForm(components.FormProps{
			Column: title,
			Fields: m.formState.Fields(),
			Focus:  m.formState.Focus(),
		})
	case state.RenameColumnMode:
		return components.RenderRename(m.formState.Rename.View())
	case state.DeleteConfirmMode:
		if c := m.currentCompany(); c != nil {
			return components.RenderConfirmDelete(c)
		}
	case state.DetailMode:
		if c := m.currentCompany(); c != nil {
			return components.RenderDetail(c, min(width-10, 80))
		}
	}
	return ""
}

func (m Model) hint() string {
	km := m.cfg.KeyMappings
	if m.uiState.Mode() == state.DragMode {
		return km.PrevColumn + "/" + km.NextColumn + " move · " + km.Drop + " drop · " + km.CancelDrag + " cancel"
	}
	return km.PickUp + " move · " + km.AddCompany + " add · " + km.RenameColumn + " rename · " + km.Quit + " quit"
}
