package memory

import (
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/repositories"
)

// ShortageRepository provides in-memory shortage record storage in input order
type ShortageRepository struct {
	items []entities.WorkItem
}

// NewShortageRepository creates a new in-memory shortage repository
func NewShortageRepository(expectedItems int) *ShortageRepository {
	return &ShortageRepository{items: make([]entities.WorkItem, 0, expectedItems)}
}

// Verify interface compliance
var _ repositories.ShortageRepository = (*ShortageRepository)(nil)

// LoadWorkItems loads shortage records into the repository
func (r *ShortageRepository) LoadWorkItems(items []*entities.WorkItem) error {
	for _, item := range items {
		r.items = append(r.items, *item)
	}
	return nil
}

// GetWorkItems returns the shortage records in input order
func (r *ShortageRepository) GetWorkItems() ([]*entities.WorkItem, error) {
	var items []*entities.WorkItem
	for i := range r.items {
		items = append(items, &r.items[i])
	}
	return items, nil
}
