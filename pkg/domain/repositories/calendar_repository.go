package repositories

import "time"

// CalendarRepository provides access to per-alias holiday exception dates
type CalendarRepository interface {
	GetHolidays(alias string) ([]time.Time, error)
	GetAllHolidays() (map[string][]time.Time, error)
	LoadHolidays(holidays map[string][]time.Time) error
}
