package scheduling

import (
	"time"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// DefaultThresholdDays is the urgency threshold used when none is configured
const DefaultThresholdDays = 3

// Classify maps a due date and reference date to an urgency level.
// Days remaining is the whole-day difference between the two dates after
// normalizing both to midnight. Pure function: identical inputs always yield
// the identical level.
func Classify(dueDate, referenceDate time.Time, thresholdDays int) (entities.UrgencyLevel, error) {
	if dueDate.IsZero() {
		return 0, ErrInvalidDate
	}
	if thresholdDays <= 0 {
		thresholdDays = DefaultThresholdDays
	}

	days := daysBetween(referenceDate, dueDate)

	switch {
	case days <= 0:
		return entities.Critical, nil
	case days <= thresholdDays:
		return entities.Urgent, nil
	case days <= 2*thresholdDays:
		return entities.Normal, nil
	default:
		return entities.Low, nil
	}
}

// midnight truncates a timestamp to the start of its calendar day
func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole-day difference to - from. Both dates are
// compared by their calendar-day components in a single location, so a UTC due
// date against a local reference date still counts whole calendar days.
func daysBetween(from, to time.Time) int {
	fromYear, fromMonth, fromDay := from.Date()
	toYear, toMonth, toDay := to.Date()
	f := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	t := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
