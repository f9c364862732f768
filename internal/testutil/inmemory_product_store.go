package testutil

import (
	"context"

	"github.com/netserve/catalog/internal/domain/product"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			WithHint("Product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, copyProduct(p))
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("product not found").
			WithHint("Product not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyProduct(p), nil
}

func (s *InMemoryProductStore) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	products, err := s.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.Code == code {
			return copyProduct(p), nil
		}
	}
	return nil, ierr.NewError("product not found").
		WithHint("Product not found").
		WithReportableDetails(map[string]interface{}{
			"code": code,
		}).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryProductStore) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	if filter == nil {
		filter = types.NewNoLimitProductFilter()
	}

	products, err := s.InMemoryStore.List(ctx, filter, productFilterFn, productSortFn)
	if err != nil {
		return nil, err
	}

	products = applyPagination(products, filter.QueryFilter)

	result := make([]*product.Product, len(products))
	for i, p := range products {
		result[i] = copyProduct(p)
	}
	return result, nil
}

func (s *InMemoryProductStore) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	if filter == nil {
		filter = types.NewNoLimitProductFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, productFilterFn)
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			WithHint("Product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, p.ID, copyProduct(p))
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// productFilterFn implements filtering logic for products
func productFilterFn(_ context.Context, p *product.Product, filter interface{}) bool {
	if p == nil {
		return false
	}

	f, ok := filter.(*types.ProductFilter)
	if !ok || f == nil {
		return true
	}

	if f.CategoryID != "" && f.CategoryID != types.FilterValueAll && p.CategoryID != f.CategoryID {
		return false
	}
	if f.ConnectionType != "" && f.ConnectionType != types.FilterValueAll && string(p.ConnectionType) != f.ConnectionType {
		return false
	}
	if f.ActiveOnly && !p.IsActive {
		return false
	}
	if f.FeaturedOnly && !p.IsFeatured {
		return false
	}
	return true
}

// productSortFn sorts products by created_at desc
func productSortFn(i, j *product.Product) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

// applyPagination slices a result set by the filter's limit and offset
func applyPagination[T any](items []T, filter *types.QueryFilter) []T {
	offset := filter.GetOffset()
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]

	if filter.IsUnlimited() {
		return items
	}
	limit := filter.GetLimit()
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
