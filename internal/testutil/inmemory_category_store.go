package testutil

import (
	"context"

	"github.com/netserve/catalog/internal/domain/category"
)

// InMemoryCategoryStore implements category.Repository
type InMemoryCategoryStore struct {
	*InMemoryStore[*category.Category]
}

// NewInMemoryCategoryStore creates a new in-memory category store
func NewInMemoryCategoryStore() *InMemoryCategoryStore {
	return &InMemoryCategoryStore{
		InMemoryStore: NewInMemoryStore[*category.Category](),
	}
}

func copyCategory(c *category.Category) *category.Category {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (s *InMemoryCategoryStore) Create(ctx context.Context, c *category.Category) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCategory(c))
}

func (s *InMemoryCategoryStore) Get(ctx context.Context, id string) (*category.Category, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCategory(c), nil
}

func (s *InMemoryCategoryStore) List(ctx context.Context) ([]*category.Category, error) {
	categories, err := s.InMemoryStore.List(ctx, nil, nil, categorySortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*category.Category, len(categories))
	for i, c := range categories {
		result[i] = copyCategory(c)
	}
	return result, nil
}

func (s *InMemoryCategoryStore) Update(ctx context.Context, c *category.Category) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyCategory(c))
}

func (s *InMemoryCategoryStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// categorySortFn sorts categories by name asc
func categorySortFn(i, j *category.Category) bool {
	if i == nil || j == nil {
		return false
	}
	return i.Name < j.Name
}
