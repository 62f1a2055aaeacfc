package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// RunSummary aggregates run-level statistics for reporting
type RunSummary struct {
	TotalItems          int             `json:"total_items"`
	AssignedItems       int             `json:"assigned_items"`
	UnscheduledItems    int             `json:"unscheduled_items"`
	OverdueItems        int             `json:"overdue_items"`
	NewProductItems     int             `json:"new_product_items"`
	TotalAllocatedHours decimal.Decimal `json:"total_allocated_hours"`
	CountsByUrgency     map[string]int  `json:"counts_by_urgency"`
	CountsByInspector   map[string]int  `json:"counts_by_inspector"`
}

// ScheduleResult contains the complete output of a planning run
type ScheduleResult struct {
	Assignments []entities.AssignmentResult `json:"assignments"`
	Unscheduled []entities.UnscheduledItem  `json:"unscheduled"`
	Summary     RunSummary                  `json:"summary"`
}

// NewScheduleResult wraps an engine result with computed summary statistics
func NewScheduleResult(assignments []entities.AssignmentResult, unscheduled []entities.UnscheduledItem) *ScheduleResult {
	summary := RunSummary{
		TotalItems:          len(assignments) + len(unscheduled),
		AssignedItems:       len(assignments),
		UnscheduledItems:    len(unscheduled),
		TotalAllocatedHours: decimal.Zero,
		CountsByUrgency:     make(map[string]int),
		CountsByInspector:   make(map[string]int),
	}

	for _, a := range assignments {
		summary.TotalAllocatedHours = summary.TotalAllocatedHours.Add(a.AllocatedHours)
		summary.CountsByUrgency[a.Urgency.String()]++
		summary.CountsByInspector[a.InspectorName]++
		if a.Urgency == entities.Critical {
			summary.OverdueItems++
		}
		if a.NewProduct {
			summary.NewProductItems++
		}
	}

	return &ScheduleResult{
		Assignments: assignments,
		Unscheduled: unscheduled,
		Summary:     summary,
	}
}
