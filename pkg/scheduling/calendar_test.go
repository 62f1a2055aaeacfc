package scheduling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// buildInspector assembles a valid inspector for scheduling tests. The shift
// runs start to end with overtime budget in hours; zero weekdays defaults to
// Monday through Friday.
func buildInspector(
	t *testing.T,
	id string,
	newTeam bool,
	startTime, endTime string,
	overtimeHours float64,
	alias string,
	days ...time.Weekday,
) *entities.Inspector {
	t.Helper()

	start, err := entities.ParseTimeOfDay(startTime)
	require.NoError(t, err)
	end, err := entities.ParseTimeOfDay(endTime)
	require.NoError(t, err)

	if len(days) == 0 {
		days = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	}
	weekdays := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		weekdays[d] = true
	}

	inspector, err := entities.NewInspector(
		entities.InspectorID(id), "Inspector "+id, "QA1",
		start, end, weekdays,
		decimal.NewFromFloat(overtimeHours), newTeam, alias)
	require.NoError(t, err)
	return inspector
}

func TestCalendar_IsWorkingDay(t *testing.T) {
	inspector := buildInspector(t, "I001", false, "08:00", "16:30", 0, "factory")

	holiday := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC) // Wednesday
	calendar := NewCalendar(map[string][]time.Time{
		"factory": {holiday},
	})

	monday := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC)

	require.True(t, calendar.IsWorkingDay(inspector, monday))
	require.False(t, calendar.IsWorkingDay(inspector, saturday), "weekday pattern excludes Saturday")
	require.False(t, calendar.IsWorkingDay(inspector, holiday), "calendar exception excludes the holiday")
}

func TestCalendar_AliasIsolation(t *testing.T) {
	holiday := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
	calendar := NewCalendar(map[string][]time.Time{
		"factory": {holiday},
	})

	factoryInspector := buildInspector(t, "I001", false, "08:00", "16:30", 0, "factory")
	officeInspector := buildInspector(t, "I002", false, "08:00", "16:30", 0, "office")

	require.False(t, calendar.IsWorkingDay(factoryInspector, holiday))
	require.True(t, calendar.IsWorkingDay(officeInspector, holiday),
		"holiday of another calendar alias must not apply")
}

func TestCalendar_UnknownAliasFallsBackToWeekdays(t *testing.T) {
	calendar := NewCalendar(nil)
	inspector := buildInspector(t, "I003", false, "08:00", "16:30", 0, "unregistered")

	monday := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 9, 21, 0, 0, 0, 0, time.UTC)

	require.True(t, calendar.IsWorkingDay(inspector, monday))
	require.False(t, calendar.IsWorkingDay(inspector, sunday))
}
