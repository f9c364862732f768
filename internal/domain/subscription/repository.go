package subscription

import (
	"context"
	"time"

	"github.com/netserve/catalog/internal/types"
)

// Repository defines the interface for subscription persistence
type Repository interface {
	// Create creates a new subscription
	Create(ctx context.Context, subscription *Subscription) error

	// Get fetches a subscription by its ID
	Get(ctx context.Context, id string) (*Subscription, error)

	// List returns subscriptions matching the filter
	List(ctx context.Context, filter *types.SubscriptionFilter) ([]*Subscription, error)

	// Count returns the number of subscriptions matching the filter
	Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error)

	// Update updates an existing subscription
	Update(ctx context.Context, subscription *Subscription) error

	// CountByPriceIDs returns the number of subscriptions referencing any of
	// the given price IDs, regardless of status
	CountByPriceIDs(ctx context.Context, priceIDs []string) (int, error)

	// ListActivePastEndDate returns active subscriptions whose end date is
	// before the given time
	ListActivePastEndDate(ctx context.Context, before time.Time) ([]*Subscription, error)
}
