package memory

import (
	"fmt"
	"time"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/repositories"
)

// CalendarRepository provides in-memory holiday exception storage keyed by
// calendar alias
type CalendarRepository struct {
	holidays map[string][]time.Time
}

// NewCalendarRepository creates a new in-memory calendar repository
func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{holidays: make(map[string][]time.Time)}
}

// Verify interface compliance
var _ repositories.CalendarRepository = (*CalendarRepository)(nil)

// LoadHolidays loads per-alias holiday lists into the repository
func (r *CalendarRepository) LoadHolidays(holidays map[string][]time.Time) error {
	for alias, dates := range holidays {
		r.holidays[alias] = append(r.holidays[alias], dates...)
	}
	return nil
}

// AddHoliday records one excluded date for a calendar alias
func (r *CalendarRepository) AddHoliday(alias string, date time.Time) {
	r.holidays[alias] = append(r.holidays[alias], date)
}

// GetHolidays returns the excluded dates for an alias
func (r *CalendarRepository) GetHolidays(alias string) ([]time.Time, error) {
	dates, exists := r.holidays[alias]
	if !exists {
		return nil, fmt.Errorf("calendar alias not found: %s", alias)
	}
	return dates, nil
}

// GetAllHolidays returns a copy of the full holiday table; callers cannot
// mutate repository state through it
func (r *CalendarRepository) GetAllHolidays() (map[string][]time.Time, error) {
	holidays := make(map[string][]time.Time, len(r.holidays))
	for alias, dates := range r.holidays {
		holidays[alias] = append([]time.Time(nil), dates...)
	}
	return holidays, nil
}
