package kanban

import "github.com/thenoetrevino/applyboard/internal/models"

// ColumnView is one rendered column: its configuration and its cards.
type ColumnView struct {
	Config    models.StatusColumnConfig
	Companies []*models.Company
}

// CompaniesIn filters companies by status, keeping their order.
func CompaniesIn(companies []*models.Company, status models.Status) []*models.Company {
	out := []*models.Company{}
	for _, c := range companies {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

// Group builds one view per column, in column order. It is recomputed
// from the list on every call so it cannot drift from it.
func Group(columns []models.StatusColumnConfig, companies []*models.Company) []ColumnView {
	views := make([]ColumnView, len(columns))
	for i, cfg := range columns {
		views[i] = ColumnView{Config: cfg, Companies: CompaniesIn(companies, cfg.Status)}
	}
	return views
}
