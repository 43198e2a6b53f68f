// Package stats summarizes a company list for the statistics views.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// Summary holds the headline counts.
type Summary struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Active      int `json:"active"`
	Passed      int `json:"passed"`
	Rejected    int `json:"rejected"`
	SuccessRate int `json:"successRate"` // percent of decided applications that passed
}

// Overview counts applications by outcome.
func Overview(companies []*models.Company) Summary {
	var s Summary
	for _, c := range companies {
		s.Total++
		switch {
		case c.Status == models.StatusPending:
			s.Pending++
		case c.Status == models.StatusPassed:
			s.Passed++
		case c.Status == models.StatusRejected:
			s.Rejected++
		case c.Status.IsActive():
			s.Active++
		}
	}
	if decided := s.Passed + s.Rejected; decided > 0 {
		s.SuccessRate = int(math.Round(float64(s.Passed) / float64(decided) * 100))
	}
	return s
}

// StageCount is the number of applications in one stage.
type StageCount struct {
	Status models.Status `json:"status"`
	Count  int           `json:"count"`
}

// Stages counts applications per status, in pipeline order, including
// empty stages.
func Stages(companies []*models.Company) []StageCount {
	counts := make(map[models.Status]int)
	for _, c := range companies {
		counts[c.Status]++
	}
	out := make([]StageCount, 0, len(models.Statuses()))
	for _, s := range models.Statuses() {
		out = append(out, StageCount{Status: s, Count: counts[s]})
	}
	return out
}

// MonthBucket is the applications created in one calendar month.
type MonthBucket struct {
	Month    string                `json:"month"` // YYYY-MM
	Total    int                   `json:"total"`
	ByStatus map[models.Status]int `json:"byStatus"`
}

// Timeline buckets applications by creation month in loc, oldest first.
// A nil loc means UTC.
func Timeline(companies []*models.Company, loc *time.Location) []MonthBucket {
	if loc == nil {
		loc = time.UTC
	}
	buckets := make(map[string]*MonthBucket)
	for _, c := range companies {
		key := c.CreatedAt.In(loc).Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{Month: key, ByStatus: make(map[models.Status]int)}
			buckets[key] = b
		}
		b.Total++
		b.ByStatus[c.Status]++
	}

	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
