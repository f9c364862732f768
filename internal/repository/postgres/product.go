package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/netserve/catalog/internal/domain/product"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
)

// productSortColumns whitelists sortable columns for product listings.
var productSortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "name",
	"code":       "code",
	"bandwidth":  "bandwidth",
	"setup_fee":  "setup_fee",
}

type productRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewProductRepository creates a sqlx-backed product repository
func NewProductRepository(db *sqlx.DB, log *logger.Logger) product.Repository {
	return &productRepository{db: db, log: log}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	const q = `
		INSERT INTO products (
			id, name, code, description, category_id, bandwidth, bandwidth_unit,
			connection_type, min_contract_months, uptime_guarantee, is_recurring,
			is_active, is_featured, setup_fee, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :code, :description, :category_id, :bandwidth, :bandwidth_unit,
			:connection_type, :min_contract_months, :uptime_guarantee, :is_recurring,
			:is_active, :is_featured, :setup_fee, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, q, p); err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A product with this code already exists").
				WithReportableDetails(map[string]interface{}{
					"code": p.Code,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return ierr.WithError(err).
				WithHint("Category does not exist").
				WithReportableDetails(map[string]interface{}{
					"category_id": p.CategoryID,
				}).
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1`

	var p product.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("product not found").
				WithHint("Product not found").
				WithReportableDetails(map[string]interface{}{
					"id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	const q = `SELECT * FROM products WHERE code = $1`

	var p product.Product
	if err := r.db.GetContext(ctx, &p, q, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("product not found").
				WithHint("Product not found").
				WithReportableDetails(map[string]interface{}{
					"code": code,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

// listWhere is shared by List and Count; empty filter values disable the
// corresponding predicate.
const productListWhere = `
	WHERE ($1 = '' OR category_id = $1)
	AND ($2 = '' OR connection_type = $2)
	AND ($3 = false OR is_active = true)
	AND ($4 = false OR is_featured = true)`

func (r *productRepository) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	if filter == nil {
		filter = types.NewProductFilter()
	}

	q := `SELECT * FROM products` + productListWhere +
		orderByClause(filter.QueryFilter, productSortColumns) +
		paginationClause(filter.QueryFilter)

	products := make([]*product.Product, 0)
	err := r.db.SelectContext(ctx, &products, q,
		normalizeFilterValue(filter.CategoryID),
		normalizeFilterValue(filter.ConnectionType),
		filter.ActiveOnly,
		filter.FeaturedOnly,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	if filter == nil {
		filter = types.NewProductFilter()
	}

	q := `SELECT COUNT(1) FROM products` + productListWhere

	var count int
	err := r.db.GetContext(ctx, &count, q,
		normalizeFilterValue(filter.CategoryID),
		normalizeFilterValue(filter.ConnectionType),
		filter.ActiveOnly,
		filter.FeaturedOnly,
	)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count products").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	const q = `
		UPDATE products SET
			name = :name, code = :code, description = :description,
			category_id = :category_id, bandwidth = :bandwidth,
			bandwidth_unit = :bandwidth_unit, connection_type = :connection_type,
			min_contract_months = :min_contract_months, uptime_guarantee = :uptime_guarantee,
			is_recurring = :is_recurring, is_active = :is_active, is_featured = :is_featured,
			setup_fee = :setup_fee, updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, q, p)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A product with this code already exists").
				WithReportableDetails(map[string]interface{}{
					"code": p.Code,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(res, "product", p.ID)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	// The product's prices go with it in one transaction; the service layer
	// has already verified no subscriptions reference them.
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM prices WHERE product_id = $1`, id); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product prices").
			Mark(ierr.ErrDatabase)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	if err := requireRowAffected(res, "product", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// normalizeFilterValue treats the "all" sentinel as no constraint.
func normalizeFilterValue(v string) string {
	if v == types.FilterValueAll {
		return ""
	}
	return v
}
