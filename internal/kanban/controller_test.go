package kanban

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/models"
)

func company(id string, status models.Status) *models.Company {
	return &models.Company{ID: id, Name: "Company " + id, Position: "Engineer", Status: status}
}

// recordUpdates returns an UpdateFunc that records calls and returns err
func recordUpdates(calls *[]StatusChange, err error) UpdateFunc {
	return func(change StatusChange) error {
		*calls = append(*calls, change)
		return err
	}
}

func TestController_DefaultColumns(t *testing.T) {
	c := NewController()
	cols := c.Columns()
	require.Len(t, cols, 6)
	for i, s := range models.Statuses() {
		assert.Equal(t, s, cols[i].Status)
		assert.NotEmpty(t, cols[i].Title)
	}
	assert.False(t, c.IsDragging())
}

func TestController_DragLifecycle(t *testing.T) {
	c := NewController()

	c.DragStart("c1")
	id, ok := c.DraggedItem()
	assert.True(t, ok)
	assert.Equal(t, "c1", id)

	c.DragOver(models.StatusApplied)
	c.DragOver(models.StatusApplied)
	hovered, ok := c.HoveredColumn()
	assert.True(t, ok)
	assert.Equal(t, models.StatusApplied, hovered)

	c.DragLeave()
	_, ok = c.HoveredColumn()
	assert.False(t, ok)
	assert.True(t, c.IsDragging(), "leaving a column keeps the card picked up")

	c.CancelDrag()
	assert.False(t, c.IsDragging())
}

func TestDrop_SameColumnIsNoOp(t *testing.T) {
	c := NewController()
	companies := []*models.Company{company("c1", models.StatusApplied)}
	var calls []StatusChange

	c.DragStart("c1")
	c.DragOver(models.StatusApplied)
	require.NoError(t, c.Drop(models.StatusApplied, companies, recordUpdates(&calls, nil)))

	assert.Empty(t, calls)
	assert.False(t, c.IsDragging())
	_, hovering := c.HoveredColumn()
	assert.False(t, hovering)
}

func TestDrop_DifferentColumnUpdatesOnce(t *testing.T) {
	c := NewController()
	companies := []*models.Company{
		company("c1", models.StatusPending),
		company("c2", models.StatusApplied),
	}
	var calls []StatusChange

	c.DragStart("c1")
	c.DragOver(models.StatusInterview)
	require.NoError(t, c.Drop(models.StatusInterview, companies, recordUpdates(&calls, nil)))

	require.Len(t, calls, 1)
	assert.Equal(t, StatusChange{ID: "c1", Status: models.StatusInterview}, calls[0])
	assert.False(t, c.IsDragging())
	_, hovering := c.HoveredColumn()
	assert.False(t, hovering)
}

func TestDrop_FailedUpdateIsReturnedAndStateCleared(t *testing.T) {
	c := NewController()
	companies := []*models.Company{company("c1", models.StatusPending)}
	boom := errors.New("write rejected")
	var calls []StatusChange

	c.DragStart("c1")
	c.DragOver(models.StatusRejected)
	err := c.Drop(models.StatusRejected, companies, recordUpdates(&calls, boom))

	assert.ErrorIs(t, err, boom)
	assert.Len(t, calls, 1)
	assert.False(t, c.IsDragging())
	_, hovering := c.HoveredColumn()
	assert.False(t, hovering)
	assert.Equal(t, models.StatusPending, companies[0].Status, "nothing is rolled back because nothing changed")
}

func TestDrop_WithoutDragIsNoOp(t *testing.T) {
	c := NewController()
	var calls []StatusChange

	c.DragOver(models.StatusApplied)
	require.NoError(t, c.Drop(models.StatusApplied, []*models.Company{company("c1", models.StatusPending)}, recordUpdates(&calls, nil)))
	assert.Empty(t, calls)
}

func TestDrop_UnknownCompanyClearsState(t *testing.T) {
	c := NewController()
	var calls []StatusChange

	c.DragStart("gone")
	c.DragOver(models.StatusApplied)
	require.NoError(t, c.Drop(models.StatusApplied, []*models.Company{company("c1", models.StatusPending)}, recordUpdates(&calls, nil)))

	assert.Empty(t, calls)
	assert.False(t, c.IsDragging())
}

func TestEditColumnTitle(t *testing.T) {
	c := NewController()

	require.NoError(t, c.EditColumnTitle(models.StatusInterview, "Onsite"))
	cfg, ok := c.Column(models.StatusInterview)
	require.True(t, ok)
	assert.Equal(t, "Onsite", cfg.Title)
	assert.NotEmpty(t, cfg.Color, "styling is untouched")

	assert.Error(t, c.EditColumnTitle(models.StatusInterview, ""))
	assert.Error(t, c.EditColumnTitle(models.StatusInterview, strings.Repeat("x", 51)))
	assert.Error(t, c.EditColumnTitle(models.StatusInterview, `<iframe src="x"></iframe>`))
	assert.ErrorIs(t, c.EditColumnTitle(models.Status("archive"), "Archive"), models.ErrInvalidStatus)

	cfg, _ = c.Column(models.StatusInterview)
	assert.Equal(t, "Onsite", cfg.Title, "rejected titles leave the column alone")

	// columns are independent
	applied, _ := c.Column(models.StatusApplied)
	assert.Equal(t, models.DefaultColumnConfigs()[models.StatusApplied].Title, applied.Title)
}

func TestApplyTitles_SkipsInvalid(t *testing.T) {
	c := NewController()
	c.ApplyTitles(map[models.Status]string{
		models.StatusPassed:   "Offers",
		models.StatusRejected: "<script>x</script>",
	})

	passed, _ := c.Column(models.StatusPassed)
	assert.Equal(t, "Offers", passed.Title)
	rejected, _ := c.Column(models.StatusRejected)
	assert.Equal(t, models.DefaultColumnConfigs()[models.StatusRejected].Title, rejected.Title)
}
