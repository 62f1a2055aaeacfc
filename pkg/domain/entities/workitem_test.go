package entities

import (
	"strings"
	"testing"
	"time"
)

func TestWorkItem_Validation(t *testing.T) {
	due := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	valid, err := NewWorkItem("P-100", due, 25, "pending")
	if err != nil {
		t.Fatalf("Expected valid work item creation to succeed: %v", err)
	}
	if valid.ProductCode != "P-100" {
		t.Errorf("Expected product code P-100, got %s", valid.ProductCode)
	}

	// A zero due date is allowed; the scheduling run reports it instead of
	// dropping the item.
	zeroDue, err := NewWorkItem("P-101", time.Time{}, 5, "pending")
	if err != nil {
		t.Fatalf("Expected zero due date to be accepted: %v", err)
	}
	if !zeroDue.DueDate.IsZero() {
		t.Errorf("Expected zero due date to be preserved")
	}

	testCases := []struct {
		name        string
		code        ProductCode
		quantity    Quantity
		expectError string
	}{
		{"empty code", "", 10, "product code cannot be empty"},
		{"zero quantity", "P-100", 0, "shortage quantity must be positive"},
		{"negative quantity", "P-100", -3, "shortage quantity must be positive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWorkItem(tc.code, due, tc.quantity, "pending")
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.expectError)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestUrgencyLevel_String(t *testing.T) {
	testCases := []struct {
		level    UrgencyLevel
		expected string
	}{
		{Critical, "Critical"},
		{Urgent, "Urgent"},
		{Normal, "Normal"},
		{Low, "Low"},
		{UrgencyLevel(99), "Unknown"},
	}

	for _, tc := range testCases {
		if tc.level.String() != tc.expected {
			t.Errorf("Expected %s, got %s", tc.expected, tc.level.String())
		}
	}
}

func TestUnscheduledReason_String(t *testing.T) {
	testCases := []struct {
		reason   UnscheduledReason
		expected string
	}{
		{ReasonInvalidDate, "InvalidDate"},
		{ReasonUnresolvedProduct, "UnresolvedProduct"},
		{ReasonNoCapacity, "NoCapacity"},
		{ReasonNoWorkingDay, "NoWorkingDay"},
		{UnscheduledReason(0), "Unknown"},
	}

	for _, tc := range testCases {
		if tc.reason.String() != tc.expected {
			t.Errorf("Expected %s, got %s", tc.expected, tc.reason.String())
		}
	}
}
