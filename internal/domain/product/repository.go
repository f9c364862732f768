package product

import (
	"context"

	"github.com/netserve/catalog/internal/types"
)

// Repository defines the interface for product persistence
type Repository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// Get fetches a product by its ID
	Get(ctx context.Context, id string) (*Product, error)

	// GetByCode fetches a product by its unique code
	GetByCode(ctx context.Context, code string) (*Product, error)

	// List returns products matching the filter
	List(ctx context.Context, filter *types.ProductFilter) ([]*Product, error)

	// Count returns the number of products matching the filter
	Count(ctx context.Context, filter *types.ProductFilter) (int, error)

	// Update updates an existing product
	Update(ctx context.Context, product *Product) error

	// Delete deletes a product by its ID
	Delete(ctx context.Context, id string) error
}
