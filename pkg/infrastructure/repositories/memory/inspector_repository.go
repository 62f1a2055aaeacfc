package memory

import (
	"fmt"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/repositories"
)

// InspectorRepository provides in-memory roster storage. Roster order is
// preserved exactly as loaded.
type InspectorRepository struct {
	inspectors []entities.Inspector
	index      map[entities.InspectorID]int
}

// NewInspectorRepository creates a new in-memory inspector repository
func NewInspectorRepository(expectedInspectors int) *InspectorRepository {
	return &InspectorRepository{
		inspectors: make([]entities.Inspector, 0, expectedInspectors),
		index:      make(map[entities.InspectorID]int, expectedInspectors),
	}
}

// Verify interface compliance
var _ repositories.InspectorRepository = (*InspectorRepository)(nil)

// LoadInspectors loads the roster into the repository
func (r *InspectorRepository) LoadInspectors(inspectors []*entities.Inspector) error {
	for _, inspector := range inspectors {
		if err := r.AddInspector(*inspector); err != nil {
			return err
		}
	}
	return nil
}

// AddInspector adds one inspector, rejecting duplicate identifiers
func (r *InspectorRepository) AddInspector(inspector entities.Inspector) error {
	if _, exists := r.index[inspector.ID]; exists {
		return fmt.Errorf("duplicate inspector id: %s", inspector.ID)
	}
	r.index[inspector.ID] = len(r.inspectors)
	r.inspectors = append(r.inspectors, inspector)
	return nil
}

// GetInspector returns the inspector with the given identifier
func (r *InspectorRepository) GetInspector(id entities.InspectorID) (*entities.Inspector, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("inspector not found: %s", id)
	}
	return &r.inspectors[i], nil
}

// GetAllInspectors returns the roster in load order
func (r *InspectorRepository) GetAllInspectors() ([]*entities.Inspector, error) {
	var inspectors []*entities.Inspector
	for i := range r.inspectors {
		inspectors = append(inspectors, &r.inspectors[i])
	}
	return inspectors, nil
}
