package price

import (
	"context"

	"github.com/netserve/catalog/internal/types"
)

// Repository defines the interface for price persistence
type Repository interface {
	// Create creates a new price
	Create(ctx context.Context, price *Price) error

	// Get fetches a price by its ID
	Get(ctx context.Context, id string) (*Price, error)

	// ListByProduct returns all prices owned by a product
	ListByProduct(ctx context.Context, productID string) ([]*Price, error)

	// List returns all prices
	List(ctx context.Context) ([]*Price, error)

	// GetByProductAndCycle fetches the price for a product and billing cycle
	GetByProductAndCycle(ctx context.Context, productID string, cycle types.BillingCycle) (*Price, error)

	// Update updates an existing price
	Update(ctx context.Context, price *Price) error

	// Delete deletes a price by its ID
	Delete(ctx context.Context, id string) error

	// DeleteByProduct deletes all prices owned by a product
	DeleteByProduct(ctx context.Context, productID string) error
}
