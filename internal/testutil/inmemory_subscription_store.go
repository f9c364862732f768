package testutil

import (
	"context"
	"time"

	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/samber/lo"
)

// InMemorySubscriptionStore implements subscription.Repository
type InMemorySubscriptionStore struct {
	*InMemoryStore[*subscription.Subscription]
}

// NewInMemorySubscriptionStore creates a new in-memory subscription store
func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		InMemoryStore: NewInMemoryStore[*subscription.Subscription](),
	}
}

func copySubscription(sub *subscription.Subscription) *subscription.Subscription {
	if sub == nil {
		return nil
	}
	copied := *sub
	copied.NextBillingDate = copyTimePtr(sub.NextBillingDate)
	copied.ApprovedBy = copyStringPtr(sub.ApprovedBy)
	copied.ApprovedAt = copyTimePtr(sub.ApprovedAt)
	copied.ApprovalNotes = copyStringPtr(sub.ApprovalNotes)
	copied.RejectedAt = copyTimePtr(sub.RejectedAt)
	copied.CancelledAt = copyTimePtr(sub.CancelledAt)
	copied.CancellationNotes = copyStringPtr(sub.CancellationNotes)
	return &copied
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}

func (s *InMemorySubscriptionStore) Create(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return ierr.NewError("subscription cannot be nil").
			WithHint("Subscription cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, sub.ID, copySubscription(sub))
}

func (s *InMemorySubscriptionStore) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	sub, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("subscription not found").
			WithHint("Subscription not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copySubscription(sub), nil
}

func (s *InMemorySubscriptionStore) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	if filter == nil {
		filter = types.NewNoLimitSubscriptionFilter()
	}

	subs, err := s.InMemoryStore.List(ctx, filter, subscriptionFilterFn, subscriptionSortFn)
	if err != nil {
		return nil, err
	}

	subs = applyPagination(subs, filter.QueryFilter)

	result := make([]*subscription.Subscription, len(subs))
	for i, sub := range subs {
		result[i] = copySubscription(sub)
	}
	return result, nil
}

func (s *InMemorySubscriptionStore) Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error) {
	if filter == nil {
		filter = types.NewNoLimitSubscriptionFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, subscriptionFilterFn)
}

func (s *InMemorySubscriptionStore) Update(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return ierr.NewError("subscription cannot be nil").
			WithHint("Subscription cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, sub.ID, copySubscription(sub))
}

func (s *InMemorySubscriptionStore) CountByPriceIDs(ctx context.Context, priceIDs []string) (int, error) {
	subs, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, sub := range subs {
		if lo.Contains(priceIDs, sub.PriceID) {
			count++
		}
	}
	return count, nil
}

func (s *InMemorySubscriptionStore) ListActivePastEndDate(ctx context.Context, before time.Time) ([]*subscription.Subscription, error) {
	subs, err := s.InMemoryStore.List(ctx, nil, nil, subscriptionSortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*subscription.Subscription, 0)
	for _, sub := range subs {
		if sub.Status == types.SubscriptionStatusActive && sub.EndDate.Before(before) {
			result = append(result, copySubscription(sub))
		}
	}
	return result, nil
}

// subscriptionFilterFn implements filtering logic for subscriptions
func subscriptionFilterFn(_ context.Context, sub *subscription.Subscription, filter interface{}) bool {
	if sub == nil {
		return false
	}

	f, ok := filter.(*types.SubscriptionFilter)
	if !ok || f == nil {
		return true
	}

	if f.UserID != "" && sub.UserID != f.UserID {
		return false
	}
	if f.Status != "" && sub.Status != f.Status {
		return false
	}
	return true
}

// subscriptionSortFn sorts subscriptions by created_at desc
func subscriptionSortFn(i, j *subscription.Subscription) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}
