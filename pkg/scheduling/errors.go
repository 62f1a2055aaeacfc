package scheduling

import "errors"

var (
	// ErrInvalidDate indicates a work item with a missing or unparseable due date
	ErrInvalidDate = errors.New("work item has no valid due date")

	// ErrUnresolvedProduct indicates a registered product code with no usable
	// per-unit inspection time in the product master
	ErrUnresolvedProduct = errors.New("no per-unit inspection time for product")

	// ErrInsufficientCapacity is returned by Reserve when the requested hours
	// exceed the remaining base plus overtime pool for the inspector/date pair
	ErrInsufficientCapacity = errors.New("insufficient remaining capacity")

	// ErrEmptyRoster indicates a run was attempted with no inspectors loaded
	ErrEmptyRoster = errors.New("inspector roster is empty")
)
