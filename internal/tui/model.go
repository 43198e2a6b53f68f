// Package tui is the interactive Kanban board.
package tui

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/applyboard/internal/app"
	"github.com/thenoetrevino/applyboard/internal/config"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/kanban"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/notify"
	"github.com/thenoetrevino/applyboard/internal/tui/state"
)

// Model is the board's bubbletea model. Sub-states are pointers so the
// add-dialog callback held by the board sees the same state as Update.
type Model struct {
	ctx    context.Context
	app    *app.App
	cfg    *config.Config
	board  *kanban.Board
	logger *slog.Logger

	uiState           *state.UIState
	formState         *state.FormState
	notificationState *state.NotificationState

	events      <-chan events.Event
	unsubscribe func()
	toasts      <-chan notify.Notification
}

// InitialModel builds the board over a. toasts is the receiving end of the
// notifier a was built with; it may be nil.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config, toasts <-chan notify.Notification) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		ctx:               ctx,
		app:               a,
		cfg:               cfg,
		logger:            slog.Default(),
		uiState:           state.NewUIState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(3),
		toasts:            toasts,
	}

	ui, forms := m.uiState, m.formState
	var board *kanban.Board
	board = a.NewBoard(ctx, func() {
		cols := board.Columns()
		status := models.StatusPending
		if i := ui.SelectedColumn(); i < len(cols) {
			status = cols[i].Config.Status
		}
		forms.OpenAdd(status)
		ui.SetMode(state.AddCompanyMode)
	})
	m.board = board
	m.events, m.unsubscribe = a.Broker.Subscribe(16)
	return m
}

// Board exposes the underlying board, mainly for tests.
func (m Model) Board() *kanban.Board {
	return m.board
}

// Mode returns the current interaction mode.
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

func (m Model) columns() []kanban.ColumnView {
	return m.board.Columns()
}

func (m Model) currentColumn() (kanban.ColumnView, bool) {
	cols := m.columns()
	i := m.uiState.SelectedColumn()
	if i < 0 || i >= len(cols) {
		return kanban.ColumnView{}, false
	}
	return cols[i], true
}

func (m Model) currentCompany() *models.Company {
	col, ok := m.currentColumn()
	if !ok {
		return nil
	}
	i := m.uiState.SelectedCard()
	if i < 0 || i >= len(col.Companies) {
		return nil
	}
	return col.Companies[i]
}

// syncHover points the dragged card at the selected column.
func (m Model) syncHover() {
	if col, ok := m.currentColumn(); ok && m.board.Controller().IsDragging() {
		m.board.Controller().DragOver(col.Config.Status)
	}
}
