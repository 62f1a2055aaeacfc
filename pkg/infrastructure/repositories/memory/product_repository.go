package memory

import (
	"fmt"

	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/entities"
	"github.com/Araiseimitsu/auto-arrenge/pkg/domain/repositories"
)

// ProductRepository provides in-memory product master storage
type ProductRepository struct {
	products []entities.Product
	index    map[entities.ProductCode]int
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products: make([]entities.Product, 0, expectedProducts),
		index:    make(map[entities.ProductCode]int, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads product master rows into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		if err := r.AddProduct(*product); err != nil {
			return err
		}
	}
	return nil
}

// AddProduct adds one product, rejecting duplicate codes
func (r *ProductRepository) AddProduct(product entities.Product) error {
	if _, exists := r.index[product.Code]; exists {
		return fmt.Errorf("duplicate product code: %s", product.Code)
	}
	r.index[product.Code] = len(r.products)
	r.products = append(r.products, product)
	return nil
}

// GetProduct returns master data for a product code
func (r *ProductRepository) GetProduct(code entities.ProductCode) (*entities.Product, error) {
	i, exists := r.index[code]
	if !exists {
		return nil, fmt.Errorf("product not found: %s", code)
	}
	return &r.products[i], nil
}

// HasProduct reports whether the code is registered in the master
func (r *ProductRepository) HasProduct(code entities.ProductCode) bool {
	_, exists := r.index[code]
	return exists
}

// GetAllProducts returns all products in load order
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	var products []*entities.Product
	for i := range r.products {
		products = append(products, &r.products[i])
	}
	return products, nil
}
