package kanban

import (
	"context"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// CompanyStore is the part of the company service the board needs.
type CompanyStore interface {
	Companies() []*models.Company
	UpdateStatus(ctx context.Context, id string, status models.Status) error
}

// TitleStore persists column titles.
type TitleStore interface {
	SetColumnTitle(ctx context.Context, status models.Status, title string) error
}

// Board wires a Controller to the company list, title persistence and the
// add-company form. Any part of the UI that wants the form opened calls
// RequestAddCompany; the single opener is fixed at construction.
type Board struct {
	ctrl          *Controller
	store         CompanyStore
	titles        TitleStore
	openAddDialog func()
}

// NewBoard creates a board. titles may be nil to keep renames in memory.
func NewBoard(store CompanyStore, titles TitleStore, openAddDialog func()) *Board {
	return &Board{
		ctrl:          NewController(),
		store:         store,
		titles:        titles,
		openAddDialog: openAddDialog,
	}
}

// Controller exposes the drag state for rendering and gestures.
func (b *Board) Controller() *Controller {
	return b.ctrl
}

// Columns groups the store's current list into the six columns.
func (b *Board) Columns() []ColumnView {
	return Group(b.ctrl.Columns(), b.store.Companies())
}

// DropOn drops the dragged card on status and sends any resulting change
// to the company service.
func (b *Board) DropOn(ctx context.Context, status models.Status) error {
	return b.ctrl.Drop(status, b.store.Companies(), func(change StatusChange) error {
		return b.store.UpdateStatus(ctx, change.ID, change.Status)
	})
}

// RenameColumn validates, applies and persists a title. If persisting
// fails the previous title is restored.
func (b *Board) RenameColumn(ctx context.Context, status models.Status, title string) error {
	prev, ok := b.ctrl.Column(status)
	if !ok {
		return models.ErrInvalidStatus
	}
	if err := b.ctrl.EditColumnTitle(status, title); err != nil {
		return err
	}
	if b.titles == nil {
		return nil
	}
	if err := b.titles.SetColumnTitle(ctx, status, title); err != nil {
		b.ctrl.columns[status] = prev
		return err
	}
	return nil
}

// RequestAddCompany asks for the add-company form to be opened.
func (b *Board) RequestAddCompany() {
	if b.openAddDialog != nil {
		b.openAddDialog()
	}
}
