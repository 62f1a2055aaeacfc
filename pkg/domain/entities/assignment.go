package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnscheduledReason explains why a work item produced no assignment
type UnscheduledReason int

// The zero value is deliberately not a valid reason; every unscheduled
// report must carry one explicitly.
const (
	ReasonInvalidDate UnscheduledReason = iota + 1
	ReasonUnresolvedProduct
	ReasonNoCapacity
	ReasonNoWorkingDay
)

// String method for UnscheduledReason enum
func (r UnscheduledReason) String() string {
	switch r {
	case ReasonInvalidDate:
		return "InvalidDate"
	case ReasonUnresolvedProduct:
		return "UnresolvedProduct"
	case ReasonNoCapacity:
		return "NoCapacity"
	case ReasonNoWorkingDay:
		return "NoWorkingDay"
	default:
		return "Unknown"
	}
}

// AssignmentResult represents one successfully scheduled work item
type AssignmentResult struct {
	ProductCode    ProductCode     `json:"product_code"`
	InspectorID    InspectorID     `json:"inspector_id"`
	InspectorName  string          `json:"inspector_name"`
	AllocatedHours decimal.Decimal `json:"allocated_hours"`
	StartDate      time.Time       `json:"start_date"`
	Urgency        UrgencyLevel    `json:"urgency"`
	NewProduct     bool            `json:"new_product"`
}

// UnscheduledItem represents a work item that could not be scheduled
type UnscheduledItem struct {
	ProductCode ProductCode       `json:"product_code"`
	DueDate     time.Time         `json:"due_date"`
	Reason      UnscheduledReason `json:"reason"`
}
