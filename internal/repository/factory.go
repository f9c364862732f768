package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/netserve/catalog/internal/cache"
	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/domain/product"
	"github.com/netserve/catalog/internal/domain/subscription"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/repository/cached"
	"github.com/netserve/catalog/internal/repository/postgres"
)

// NewProductRepository creates the production product repository
func NewProductRepository(db *sqlx.DB, log *logger.Logger) product.Repository {
	return postgres.NewProductRepository(db, log)
}

// NewPriceRepository creates the production price repository
func NewPriceRepository(db *sqlx.DB, log *logger.Logger) price.Repository {
	return postgres.NewPriceRepository(db, log)
}

// NewSubscriptionRepository creates the production subscription repository
func NewSubscriptionRepository(db *sqlx.DB, log *logger.Logger) subscription.Repository {
	return postgres.NewSubscriptionRepository(db, log)
}

// NewCategoryRepository creates the production category repository with
// read-through caching
func NewCategoryRepository(db *sqlx.DB, log *logger.Logger, c cache.Cache) category.Repository {
	return cached.NewCategoryRepository(postgres.NewCategoryRepository(db, log), c)
}
