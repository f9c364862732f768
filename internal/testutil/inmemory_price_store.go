package testutil

import (
	"context"

	"github.com/netserve/catalog/internal/domain/price"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
)

// InMemoryPriceStore implements price.Repository
type InMemoryPriceStore struct {
	*InMemoryStore[*price.Price]
}

// NewInMemoryPriceStore creates a new in-memory price store
func NewInMemoryPriceStore() *InMemoryPriceStore {
	return &InMemoryPriceStore{
		InMemoryStore: NewInMemoryStore[*price.Price](),
	}
}

func copyPrice(p *price.Price) *price.Price {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryPriceStore) Create(ctx context.Context, p *price.Price) error {
	if p == nil {
		return ierr.NewError("price cannot be nil").
			WithHint("Price cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, copyPrice(p))
}

func (s *InMemoryPriceStore) Get(ctx context.Context, id string) (*price.Price, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("price not found").
			WithHint("Price not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPrice(p), nil
}

func (s *InMemoryPriceStore) ListByProduct(ctx context.Context, productID string) ([]*price.Price, error) {
	prices, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*price.Price, 0, len(prices))
	for _, p := range prices {
		if p.ProductID == productID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *InMemoryPriceStore) List(ctx context.Context) ([]*price.Price, error) {
	prices, err := s.InMemoryStore.List(ctx, nil, nil, priceSortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*price.Price, len(prices))
	for i, p := range prices {
		result[i] = copyPrice(p)
	}
	return result, nil
}

func (s *InMemoryPriceStore) GetByProductAndCycle(ctx context.Context, productID string, cycle types.BillingCycle) (*price.Price, error) {
	prices, err := s.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, p := range prices {
		if p.BillingCycle == cycle {
			return p, nil
		}
	}
	return nil, ierr.NewError("price not found").
		WithHint("Price not found").
		WithReportableDetails(map[string]interface{}{
			"product_id":    productID,
			"billing_cycle": cycle,
		}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryPriceStore) Update(ctx context.Context, p *price.Price) error {
	if p == nil {
		return ierr.NewError("price cannot be nil").
			WithHint("Price cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, p.ID, copyPrice(p))
}

func (s *InMemoryPriceStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryPriceStore) DeleteByProduct(ctx context.Context, productID string) error {
	prices, err := s.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}
	for _, p := range prices {
		if err := s.InMemoryStore.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// priceSortFn sorts prices by billing cycle length ascending
func priceSortFn(i, j *price.Price) bool {
	if i == nil || j == nil {
		return false
	}
	return i.BillingCycle.Months() < j.BillingCycle.Months()
}
