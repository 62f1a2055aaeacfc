package scheduling

import (
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
)

// ProductIndex is the read-only view of the product master the scheduling
// core needs. The in-memory product repository satisfies it.
type ProductIndex interface {
	GetProduct(code entities.ProductCode) (*entities.Product, error)
	HasProduct(code entities.ProductCode) bool
}

// NewProductMembers returns the inspectors flagged for the new-product team,
// in roster order.
func NewProductMembers(roster []*entities.Inspector) []*entities.Inspector {
	var members []*entities.Inspector
	for _, inspector := range roster {
		if inspector.NewProductTeam {
			members = append(members, inspector)
		}
	}
	return members
}

// RegularMembers returns the inspectors not on the new-product team, in
// roster order.
func RegularMembers(roster []*entities.Inspector) []*entities.Inspector {
	var members []*entities.Inspector
	for _, inspector := range roster {
		if !inspector.NewProductTeam {
			members = append(members, inspector)
		}
	}
	return members
}

// IsNewProduct reports whether the work item's product code is absent from
// the product master.
func IsNewProduct(item *entities.WorkItem, products ProductIndex) bool {
	return !products.HasProduct(item.ProductCode)
}
