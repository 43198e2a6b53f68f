package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/applyboard/internal/events"
	"github.com/thenoetrevino/applyboard/internal/notify"
)

// toastLifetime is how long a toast stays on screen.
const toastLifetime = 4 * time.Second

type companiesLoadedMsg struct{ err error }

type boardEventMsg struct{ event events.Event }

type eventsClosedMsg struct{}

type toastMsg struct{ n notify.Notification }

type dismissToastMsg struct{ id int }

func (m Model) fetchCompanies() tea.Cmd {
	svc, ctx := m.app.CompanyService, m.ctx
	return func() tea.Msg {
		_, err := svc.FetchCompanies(ctx)
		return companiesLoadedMsg{err: err}
	}
}

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return boardEventMsg{event: e}
	}
}

func waitForToast(ch <-chan notify.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return toastMsg{n: n}
	}
}

func dismissAfter(id int) tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return dismissToastMsg{id: id}
	})
}
