package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InspectorID represents a unique inspector identifier
type InspectorID string

// TimeOfDay represents a clock time as minutes since midnight
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" clock time
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// String method for TimeOfDay
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Inspector represents a member of the inspection roster.
// Roster data is immutable during a run; remaining-capacity state is
// tracked separately by the scheduling core.
type Inspector struct {
	ID                  InspectorID
	Name                string
	Group               string
	StartTime           TimeOfDay
	EndTime             TimeOfDay
	WorkingWeekdays     map[time.Weekday]bool
	OvertimeBudgetHours decimal.Decimal
	NewProductTeam      bool
	CalendarAlias       string
}

// NewInspector creates a validated Inspector
func NewInspector(
	id InspectorID,
	name, group string,
	startTime, endTime TimeOfDay,
	workingWeekdays map[time.Weekday]bool,
	overtimeBudgetHours decimal.Decimal,
	newProductTeam bool,
	calendarAlias string,
) (*Inspector, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("inspector id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("inspector name cannot be empty")
	}
	if endTime <= startTime {
		return nil, fmt.Errorf("end time %s must be after start time %s", endTime, startTime)
	}
	if len(workingWeekdays) == 0 {
		return nil, fmt.Errorf("inspector %s has no working weekdays", id)
	}
	if overtimeBudgetHours.IsNegative() {
		return nil, fmt.Errorf("overtime budget cannot be negative, got %s", overtimeBudgetHours)
	}

	return &Inspector{
		ID:                  id,
		Name:                name,
		Group:               group,
		StartTime:           startTime,
		EndTime:             endTime,
		WorkingWeekdays:     workingWeekdays,
		OvertimeBudgetHours: overtimeBudgetHours,
		NewProductTeam:      newProductTeam,
		CalendarAlias:       calendarAlias,
	}, nil
}

// DailyHours returns the base working hours per day (end time minus start time)
func (i *Inspector) DailyHours() decimal.Decimal {
	minutes := int64(i.EndTime - i.StartTime)
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60))
}

// WorksOn reports whether the weekday is part of the inspector's weekly pattern
func (i *Inspector) WorksOn(day time.Weekday) bool {
	return i.WorkingWeekdays[day]
}
