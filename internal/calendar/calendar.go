// Package calendar derives deadline events from a company list.
package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// Event is one application deadline.
type Event struct {
	Company *models.Company
	Date    time.Time
}

// ParseDeadline accepts YYYY-MM-DD (midnight in loc) or RFC3339.
func ParseDeadline(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(models.DeadlineDateLayout, raw, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// Events returns every parsable deadline, earliest first.
func Events(companies []*models.Company, loc *time.Location) []Event {
	var out []Event
	for _, c := range companies {
		if d, ok := ParseDeadline(c.Deadline, loc); ok {
			out = append(out, Event{Company: c, Date: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// EventsOn returns the deadlines falling on day's calendar date.
func EventsOn(companies []*models.Company, day time.Time) []Event {
	var out []Event
	for _, e := range Events(companies, day.Location()) {
		if sameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming returns deadlines in [now, now+within] for applications that
// are not yet decided.
func Upcoming(companies []*models.Company, now time.Time, within time.Duration) []Event {
	end := now.Add(within)
	var out []Event
	for _, e := range Events(companies, now.Location()) {
		if e.Company.Status.IsClosed() {
			continue
		}
		if e.Date.Before(now) && !sameDay(e.Date, now) {
			continue
		}
		if e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DaysWithEvents returns the days of month that have at least one deadline.
func DaysWithEvents(companies []*models.Company, year int, month time.Month, loc *time.Location) map[int]bool {
	days := make(map[int]bool)
	for _, e := range Events(companies, loc) {
		if e.Date.Year() == year && e.Date.Month() == month {
			days[e.Date.Day()] = true
		}
	}
	return days
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
