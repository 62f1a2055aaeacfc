package repositories

import "github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"

// InspectorRepository provides access to the inspector roster.
// GetAllInspectors preserves roster order; the scheduling core depends on it
// for deterministic tie-breaking.
type InspectorRepository interface {
	GetInspector(id entities.InspectorID) (*entities.Inspector, error)
	GetAllInspectors() ([]*entities.Inspector, error)
	LoadInspectors(inspectors []*entities.Inspector) error
}
