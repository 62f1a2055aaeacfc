package repositories

import "github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"

// ShortageRepository provides access to pending shortage records.
// GetWorkItems preserves input order; the scheduling core uses it as the
// final tie-break when sorting.
type ShortageRepository interface {
	GetWorkItems() ([]*entities.WorkItem, error)
	LoadWorkItems(items []*entities.WorkItem) error
}
