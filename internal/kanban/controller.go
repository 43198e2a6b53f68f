// Package kanban holds the board's drag-and-drop state and column
// configuration. It never writes to the store itself: a drop is turned
// into a status change handed to the caller's update function.
package kanban

import (
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/security"
)

// StatusChange asks for one company to move to another column.
type StatusChange struct {
	ID     string
	Status models.Status
}

// UpdateFunc performs a status change.
type UpdateFunc func(change StatusChange) error

// Controller tracks the card being dragged, the column under it and the
// per-column display configuration. It is driven by a single UI loop and
// is not safe for concurrent use.
type Controller struct {
	columns       map[models.Status]models.StatusColumnConfig
	draggedItemID string
	hoveredColumn models.Status
}

// NewController seeds one column per status with the default titles.
func NewController() *Controller {
	return &Controller{columns: models.DefaultColumnConfigs()}
}

// DragStart picks up a card.
func (c *Controller) DragStart(companyID string) {
	c.draggedItemID = companyID
}

// DragOver marks the column under the card. Repeated calls are fine.
func (c *Controller) DragOver(status models.Status) {
	c.hoveredColumn = status
}

// DragLeave clears the hovered column.
func (c *Controller) DragLeave() {
	c.hoveredColumn = ""
}

// CancelDrag abandons the drag without a drop.
func (c *Controller) CancelDrag() {
	c.draggedItemID = ""
	c.hoveredColumn = ""
}

// Drop releases the dragged card on target. update is called at most once,
// and only when the card exists in companies with a different status.
// Drag and hover state are cleared whatever happens. An error from update
// is returned as is; nothing is rolled back here because the list the
// board renders from never changed.
func (c *Controller) Drop(target models.Status, companies []*models.Company, update UpdateFunc) error {
	if c.draggedItemID == "" {
		return nil
	}
	defer c.CancelDrag()

	for _, company := range companies {
		if company.ID != c.draggedItemID {
			continue
		}
		if company.Status == target {
			return nil
		}
		return update(StatusChange{ID: company.ID, Status: target})
	}
	return nil
}

// EditColumnTitle renames a column. Titles get the same markup and length
// checks as company fields.
func (c *Controller) EditColumnTitle(status models.Status, title string) error {
	cfg, ok := c.columns[status]
	if !ok {
		return models.ErrInvalidStatus
	}
	if err := security.ValidateColumnTitle(title); err != nil {
		return err
	}
	cfg.Title = title
	c.columns[status] = cfg
	return nil
}

// ApplyTitles overlays stored titles on the current configuration.
// Titles that would fail EditColumnTitle are skipped.
func (c *Controller) ApplyTitles(titles map[models.Status]string) {
	for status, title := range titles {
		_ = c.EditColumnTitle(status, title)
	}
}

// Column returns one column's configuration.
func (c *Controller) Column(status models.Status) (models.StatusColumnConfig, bool) {
	cfg, ok := c.columns[status]
	return cfg, ok
}

// Columns returns every column in board order.
func (c *Controller) Columns() []models.StatusColumnConfig {
	out := make([]models.StatusColumnConfig, 0, len(c.columns))
	for _, s := range models.Statuses() {
		out = append(out, c.columns[s])
	}
	return out
}

// DraggedItem returns the id of the card being dragged.
func (c *Controller) DraggedItem() (string, bool) {
	return c.draggedItemID, c.draggedItemID != ""
}

// HoveredColumn returns the column under the dragged card.
func (c *Controller) HoveredColumn() (models.Status, bool) {
	return c.hoveredColumn, c.hoveredColumn != ""
}

func (c *Controller) IsDragging() bool {
	return c.draggedItemID != ""
}
