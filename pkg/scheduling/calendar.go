package scheduling

import (
	"time"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// Calendar answers whether a date is a working day for an inspector. It is
// constructed from a fully materialized holiday table; no file or network
// access happens on the query path.
type Calendar struct {
	exceptions map[string]map[string]struct{}
}

// NewCalendar creates a Calendar from per-alias holiday exception dates
func NewCalendar(holidays map[string][]time.Time) *Calendar {
	exceptions := make(map[string]map[string]struct{}, len(holidays))
	for alias, dates := range holidays {
		days := make(map[string]struct{}, len(dates))
		for _, d := range dates {
			days[dateKey(d)] = struct{}{}
		}
		exceptions[alias] = days
	}
	return &Calendar{exceptions: exceptions}
}

// IsWorkingDay reports whether the date is a working day for the inspector:
// the weekday must be in the inspector's weekly pattern and the date must not
// appear in the exception list for the inspector's calendar alias.
func (c *Calendar) IsWorkingDay(inspector *entities.Inspector, date time.Time) bool {
	if !inspector.WorksOn(date.Weekday()) {
		return false
	}
	if days, ok := c.exceptions[inspector.CalendarAlias]; ok {
		if _, holiday := days[dateKey(date)]; holiday {
			return false
		}
	}
	return true
}

// dateKey normalizes a timestamp to its calendar-day identity
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
