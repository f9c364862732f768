package category

import (
	"context"
)

// Repository defines the interface for category persistence
type Repository interface {
	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// Get fetches a category by its ID
	Get(ctx context.Context, id string) (*Category, error)

	// List returns all categories
	List(ctx context.Context) ([]*Category, error)

	// Update updates an existing category
	Update(ctx context.Context, category *Category) error

	// Delete deletes a category by its ID
	Delete(ctx context.Context, id string) error
}
