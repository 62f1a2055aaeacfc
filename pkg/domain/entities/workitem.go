package entities

import (
	"fmt"
	"time"
)

// WorkItem represents a single shortage record: inspection work arising from
// insufficient shipped quantity for a product. DueDate may be zero when the
// source row carried no parseable date; the scheduling core reports such items
// instead of dropping them.
type WorkItem struct {
	ProductCode      ProductCode
	DueDate          time.Time
	ShortageQuantity Quantity
	Status           string
}

// NewWorkItem creates a validated WorkItem
func NewWorkItem(
	code ProductCode,
	dueDate time.Time,
	shortageQuantity Quantity,
	status string,
) (*WorkItem, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if shortageQuantity <= 0 {
		return nil, fmt.Errorf("shortage quantity must be positive, got %d", shortageQuantity)
	}

	return &WorkItem{
		ProductCode:      code,
		DueDate:          dueDate,
		ShortageQuantity: shortageQuantity,
		Status:           status,
	}, nil
}
