package memory

import (
	"testing"
	"time"
)

func TestCalendarRepository_LoadAndGet(t *testing.T) {
	repo := NewCalendarRepository()

	holidays := map[string][]time.Time{
		"factory": {
			time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := repo.LoadHolidays(holidays); err != nil {
		t.Fatalf("Failed to load holidays: %v", err)
	}
	repo.AddHoliday("factory", time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC))

	dates, err := repo.GetHolidays("factory")
	if err != nil {
		t.Fatalf("Failed to get holidays: %v", err)
	}
	if len(dates) != 3 {
		t.Errorf("Expected 3 holidays, got %d", len(dates))
	}

	_, err = repo.GetHolidays("office")
	if err == nil {
		t.Error("Expected error for unknown calendar alias")
	}
}

func TestCalendarRepository_GetAllHolidaysReturnsCopy(t *testing.T) {
	repo := NewCalendarRepository()
	repo.AddHoliday("factory", time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC))

	all, err := repo.GetAllHolidays()
	if err != nil {
		t.Fatalf("Failed to get holiday table: %v", err)
	}

	// Mutating the returned table must not touch repository state
	all["factory"] = append(all["factory"], time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	delete(all, "factory")

	dates, err := repo.GetHolidays("factory")
	if err != nil {
		t.Fatalf("Failed to get holidays: %v", err)
	}
	if len(dates) != 1 {
		t.Errorf("Expected repository to keep 1 holiday, got %d", len(dates))
	}
}
