package cached

import (
	"context"
	"fmt"

	"github.com/netserve/catalog/internal/cache"
	"github.com/netserve/catalog/internal/domain/category"
)

const (
	cacheKeyCategory       = "category:%s"
	cacheKeyCategoryList   = "category:list"
	cacheKeyCategoryPrefix = "category:"
)

// categoryRepository decorates a category repository with read-through
// caching. Categories change rarely and sit on every product page, so they
// are the one collection worth caching aggressively.
type categoryRepository struct {
	inner category.Repository
	cache cache.Cache
}

// NewCategoryRepository wraps a category repository with caching
func NewCategoryRepository(inner category.Repository, c cache.Cache) category.Repository {
	return &categoryRepository{inner: inner, cache: c}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	if err := r.inner.Create(ctx, c); err != nil {
		return err
	}
	r.cache.DeleteByPrefix(ctx, cacheKeyCategoryPrefix)
	return nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (*category.Category, error) {
	key := fmt.Sprintf(cacheKeyCategory, id)
	if value, found := r.cache.Get(ctx, key); found {
		if cached, ok := cache.UnmarshalCacheValue[category.Category](value); ok {
			return cached, nil
		}
	}

	c, err := r.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, key, c, 0)
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if value, found := r.cache.Get(ctx, cacheKeyCategoryList); found {
		if cached, ok := cache.UnmarshalCacheValue[[]*category.Category](value); ok {
			return *cached, nil
		}
	}

	categories, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKeyCategoryList, &categories, 0)
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	if err := r.inner.Update(ctx, c); err != nil {
		return err
	}
	r.cache.DeleteByPrefix(ctx, cacheKeyCategoryPrefix)
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeleteByPrefix(ctx, cacheKeyCategoryPrefix)
	return nil
}
