package entities

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func weekdaySet(days ...time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool)
	for _, d := range days {
		set[d] = true
	}
	return set
}

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{"08:00", TimeOfDay(8 * 60), false},
		{"16:30", TimeOfDay(16*60 + 30), false},
		{"00:00", TimeOfDay(0), false},
		{"23:59", TimeOfDay(23*60 + 59), false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"0800", 0, true},
		{"", 0, true},
		{"eight", 0, true},
	}

	for _, tc := range testCases {
		got, err := ParseTimeOfDay(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseTimeOfDay(%q): expected %d, got %d", tc.input, tc.expected, got)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tod, err := ParseTimeOfDay("08:05")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tod.String() != "08:05" {
		t.Errorf("Expected 08:05, got %s", tod.String())
	}
}

func TestInspector_Validation(t *testing.T) {
	start, _ := ParseTimeOfDay("08:00")
	end, _ := ParseTimeOfDay("16:30")
	weekdays := weekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

	valid, err := NewInspector("I001", "Tanaka", "QA1", start, end, weekdays, decimal.Zero, false, "default")
	if err != nil {
		t.Fatalf("Expected valid inspector creation to succeed: %v", err)
	}
	if valid.ID != "I001" {
		t.Errorf("Expected inspector id I001, got %s", valid.ID)
	}

	testCases := []struct {
		name        string
		id          InspectorID
		displayName string
		start       TimeOfDay
		end         TimeOfDay
		weekdays    map[time.Weekday]bool
		overtime    decimal.Decimal
		expectError string
	}{
		{"empty id", "", "Tanaka", start, end, weekdays, decimal.Zero, "inspector id cannot be empty"},
		{"empty name", "I001", "", start, end, weekdays, decimal.Zero, "inspector name cannot be empty"},
		{"end before start", "I001", "Tanaka", end, start, weekdays, decimal.Zero, "must be after start time"},
		{"end equals start", "I001", "Tanaka", start, start, weekdays, decimal.Zero, "must be after start time"},
		{"no weekdays", "I001", "Tanaka", start, end, map[time.Weekday]bool{}, decimal.Zero, "no working weekdays"},
		{"negative overtime", "I001", "Tanaka", start, end, weekdays, decimal.NewFromInt(-1), "overtime budget cannot be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInspector(tc.id, tc.displayName, "QA1", tc.start, tc.end, tc.weekdays, tc.overtime, false, "default")
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.expectError)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestInspector_DailyHours(t *testing.T) {
	start, _ := ParseTimeOfDay("08:00")
	end, _ := ParseTimeOfDay("16:30")

	inspector, err := NewInspector("I001", "Tanaka", "QA1", start, end,
		weekdaySet(time.Monday), decimal.Zero, false, "default")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := decimal.NewFromFloat(8.5)
	if !inspector.DailyHours().Equal(expected) {
		t.Errorf("Expected daily hours %s, got %s", expected, inspector.DailyHours())
	}
}

func TestInspector_WorksOn(t *testing.T) {
	start, _ := ParseTimeOfDay("09:00")
	end, _ := ParseTimeOfDay("17:00")

	inspector, err := NewInspector("I002", "Suzuki", "QA2", start, end,
		weekdaySet(time.Monday, time.Wednesday), decimal.Zero, true, "default")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !inspector.WorksOn(time.Monday) {
		t.Errorf("Expected inspector to work on Monday")
	}
	if inspector.WorksOn(time.Sunday) {
		t.Errorf("Expected inspector not to work on Sunday")
	}
}
