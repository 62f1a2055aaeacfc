package repositories

import "github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"

// ProductRepository provides access to product master data
type ProductRepository interface {
	GetProduct(code entities.ProductCode) (*entities.Product, error)
	HasProduct(code entities.ProductCode) bool
	GetAllProducts() ([]*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}
