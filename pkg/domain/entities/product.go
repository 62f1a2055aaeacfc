package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductCode represents a unique product identifier
type ProductCode string

// Quantity represents an integer count of discrete inspection units
type Quantity int64

// Product represents product master reference data.
// UnitInspectionHours is the nominal inspection time for a single piece,
// normalized to hours at load time.
type Product struct {
	Code                ProductCode
	Name                string
	ProcessNumber       int
	UnitInspectionHours decimal.Decimal
	Category            string
}

// NewProduct creates a validated Product
func NewProduct(
	code ProductCode,
	name string,
	processNumber int,
	unitInspectionHours decimal.Decimal,
	category string,
) (*Product, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if processNumber < 0 {
		return nil, fmt.Errorf("process number cannot be negative, got %d", processNumber)
	}
	if unitInspectionHours.IsNegative() {
		return nil, fmt.Errorf("unit inspection hours cannot be negative, got %s", unitInspectionHours)
	}

	return &Product{
		Code:                code,
		Name:                name,
		ProcessNumber:       processNumber,
		UnitInspectionHours: unitInspectionHours,
		Category:            category,
	}, nil
}
