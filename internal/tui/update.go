package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/notify"
	"github.com/thenoetrevino/applyboard/internal/security"
	"github.com/thenoetrevino/applyboard/internal/tui/state"
)

// Init loads the company list and starts listening for changes and toasts.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCompanies(), waitForEvent(m.events), waitForToast(m.toasts))
}

// Update handles all incoming messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case companiesLoadedMsg:
		if msg.err != nil {
			m.logger.Debug("failed to load companies", "error", msg.err)
		}
		m.clampSelection()
		return m, nil

	case boardEventMsg:
		next := waitForEvent(m.events)
		switch msg.event.Type {
		case events.EventSettingsChanged:
			m.reloadTitles()
		case events.EventCompaniesChanged:
			next = tea.Batch(m.fetchCompanies(), next)
		}
		m.clampSelection()
		return m, next

	case eventsClosedMsg:
		return m, nil

	case toastMsg:
		return m, tea.Batch(m.pushToast(msg.n), waitForToast(m.toasts))

	case dismissToastMsg:
		m.notificationState.Dismiss(msg.id)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m.handleKey(msg)
	}

	// Cursor blink and similar messages belong to the focused input
	switch m.uiState.Mode() {
	case state.AddCompanyMode:
		return m, m.formState.UpdateFocused(msg)
	case state.RenameColumnMode:
		var cmd tea.Cmd
		m.formState.Rename, cmd = m.formState.Rename.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.DragMode:
		return m.handleDragMode(msg)
	case state.AddCompanyMode:
		return m.handleAddCompanyMode(msg)
	case state.RenameColumnMode:
		return m.handleRenameMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirmMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.cfg.KeyMappings
	key := msg.String()
	cols := len(m.columns())

	switch key {
	case km.Quit:
		return m.quit()
	case km.PrevColumn, "left":
		m.uiState.MoveColumn(-1, cols)
	case km.NextColumn, "right":
		m.uiState.MoveColumn(1, cols)
	case km.PrevCard, "up":
		m.uiState.MoveCard(-1, m.cardCount())
	case km.NextCard, "down":
		m.uiState.MoveCard(1, m.cardCount())
	case km.PickUp:
		if c := m.currentCompany(); c != nil {
			ctrl := m.board.Controller()
			ctrl.DragStart(c.ID)
			ctrl.DragOver(c.Status)
			m.uiState.SetMode(state.DragMode)
		}
	case km.AddCompany:
		m.board.RequestAddCompany()
	case km.RenameColumn:
		if col, ok := m.currentColumn(); ok {
			cmd := m.formState.OpenRename(col.Config.Status, col.Config.Title)
			m.uiState.SetMode(state.RenameColumnMode)
			return m, cmd
		}
	case km.DeleteCompany:
		if m.currentCompany() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	case km.ViewCompany:
		if m.currentCompany() != nil {
			m.uiState.SetMode(state.DetailMode)
		}
	case km.Refresh:
		return m, m.fetchCompanies()
	}
	return m, nil
}

// handleDragMode moves the picked-up card between columns. The card only
// changes column on drop; until then it is drawn where it was.
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.cfg.KeyMappings
	ctrl := m.board.Controller()
	cols := len(m.columns())

	switch msg.String() {
	case km.PrevColumn, "left":
		ctrl.DragLeave()
		m.uiState.MoveColumn(-1, cols)
		m.syncHover()
	case km.NextColumn, "right":
		ctrl.DragLeave()
		m.uiState.MoveColumn(1, cols)
		m.syncHover()
	case km.Drop:
		target, ok := ctrl.HoveredColumn()
		if !ok {
			col, _ := m.currentColumn()
			target = col.Config.Status
		}
		if err := m.board.DropOn(m.ctx, target); err != nil {
			m.logger.Debug("drop failed", "status", target, "error", err)
		}
		m.uiState.SetMode(state.NormalMode)
		m.clampSelection()
	case km.CancelDrag:
		ctrl.CancelDrag()
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) handleAddCompanyMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case "tab", "down":
		return m, m.formState.Cycle(1)
	case "shift+tab", "up":
		return m, m.formState.Cycle(-1)
	case "enter":
		// The service reports failures as toasts; the form stays open to fix them
		if _, err := m.app.CompanyService.AddCompany(m.ctx, m.formState.Draft()); err != nil {
			m.logger.Debug("add company failed", "error", err)
			return m, nil
		}
		m.uiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	}
	return m, m.formState.UpdateFocused(msg)
}

func (m Model) handleRenameMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		err := m.board.RenameColumn(m.ctx, m.formState.RenameStatus, m.formState.Rename.Value())
		var verr *security.ValidationError
		if errors.As(err, &verr) {
			return m, m.pushToast(notify.Notification{
				Level:   notify.LevelError,
				Title:   "Invalid column title",
				Message: verr.Message,
			})
		}
		if err != nil {
			m.logger.Debug("rename column failed", "error", err)
		}
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	var cmd tea.Cmd
	m.formState.Rename, cmd = m.formState.Rename.Update(msg)
	return m, cmd
}

func (m Model) handleDeleteConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if c := m.currentCompany(); c != nil {
			if err := m.app.CompanyService.DeleteCompany(m.ctx, c.ID); err != nil {
				m.logger.Debug("delete company failed", "id", c.ID, "error", err)
			}
		}
		m.uiState.SetMode(state.NormalMode)
		m.clampSelection()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", m.cfg.KeyMappings.ViewCompany, m.cfg.KeyMappings.Quit:
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

func (m Model) pushToast(n notify.Notification) tea.Cmd {
	return dismissAfter(m.notificationState.Add(n))
}

func (m Model) cardCount() int {
	col, ok := m.currentColumn()
	if !ok {
		return 0
	}
	return len(col.Companies)
}

func (m Model) clampSelection() {
	m.uiState.ClampCard(m.cardCount())
}

func (m Model) reloadTitles() {
	titles, err := m.app.SettingsService.ColumnTitles(m.ctx)
	if err != nil {
		m.logger.Debug("failed to reload column titles", "error", err)
		return
	}
	m.board.Controller().ApplyTitles(titles)
}
