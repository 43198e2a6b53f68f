package kanban

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/models"
)

func TestGroup_EmptyListHasAllColumns(t *testing.T) {
	views := Group(NewController().Columns(), nil)
	require.Len(t, views, 6)
	for _, v := range views {
		assert.NotNil(t, v.Companies)
		assert.Empty(t, v.Companies)
	}
}

func TestGroup_Completeness(t *testing.T) {
	statuses := models.Statuses()
	lists := [][]*models.Company{
		{},
		{company("only", models.StatusInterview)},
	}
	var mixed []*models.Company
	for i := 0; i < 25; i++ {
		mixed = append(mixed, company(fmt.Sprintf("c%d", i), statuses[(i*7)%len(statuses)]))
	}
	lists = append(lists, mixed)

	for _, list := range lists {
		views := Group(NewController().Columns(), list)
		require.Len(t, views, 6)

		seen := map[string]int{}
		for _, v := range views {
			for _, c := range v.Companies {
				assert.Equal(t, v.Config.Status, c.Status)
				seen[c.ID]++
			}
		}
		assert.Len(t, seen, len(list), "no company lost")
		for id, n := range seen {
			assert.Equal(t, 1, n, "company %s duplicated", id)
		}
	}
}

func TestCompaniesIn_KeepsOrder(t *testing.T) {
	list := []*models.Company{
		company("a", models.StatusApplied),
		company("b", models.StatusPending),
		company("c", models.StatusApplied),
	}
	got := CompaniesIn(list, models.StatusApplied)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
