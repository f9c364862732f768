package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/netserve/catalog/internal/domain/price"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
)

type priceRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewPriceRepository creates a sqlx-backed price repository
func NewPriceRepository(db *sqlx.DB, log *logger.Logger) price.Repository {
	return &priceRepository{db: db, log: log}
}

func (r *priceRepository) Create(ctx context.Context, p *price.Price) error {
	const q = `
		INSERT INTO prices (
			id, product_id, amount, billing_cycle,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :product_id, :amount, :billing_cycle,
			:created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, q, p); err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("The product already has a price for this billing cycle").
				WithReportableDetails(map[string]interface{}{
					"product_id":    p.ProductID,
					"billing_cycle": p.BillingCycle,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return ierr.WithError(err).
				WithHint("Product does not exist").
				WithReportableDetails(map[string]interface{}{
					"product_id": p.ProductID,
				}).
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).
			WithHint("Failed to create price").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *priceRepository) Get(ctx context.Context, id string) (*price.Price, error) {
	const q = `SELECT * FROM prices WHERE id = $1`

	var p price.Price
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("price not found").
				WithHint("Price not found").
				WithReportableDetails(map[string]interface{}{
					"id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch price").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *priceRepository) ListByProduct(ctx context.Context, productID string) ([]*price.Price, error) {
	const q = `SELECT * FROM prices WHERE product_id = $1 ORDER BY billing_cycle`

	prices := make([]*price.Price, 0)
	if err := r.db.SelectContext(ctx, &prices, q, productID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list prices").
			Mark(ierr.ErrDatabase)
	}
	return prices, nil
}

func (r *priceRepository) List(ctx context.Context) ([]*price.Price, error) {
	const q = `SELECT * FROM prices ORDER BY created_at DESC`

	prices := make([]*price.Price, 0)
	if err := r.db.SelectContext(ctx, &prices, q); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list prices").
			Mark(ierr.ErrDatabase)
	}
	return prices, nil
}

func (r *priceRepository) GetByProductAndCycle(ctx context.Context, productID string, cycle types.BillingCycle) (*price.Price, error) {
	const q = `SELECT * FROM prices WHERE product_id = $1 AND billing_cycle = $2`

	var p price.Price
	if err := r.db.GetContext(ctx, &p, q, productID, cycle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("price not found").
				WithHint("No price exists for this product and billing cycle").
				WithReportableDetails(map[string]interface{}{
					"product_id":    productID,
					"billing_cycle": cycle,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch price").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *priceRepository) Update(ctx context.Context, p *price.Price) error {
	const q = `
		UPDATE prices SET
			amount = :amount, billing_cycle = :billing_cycle,
			updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, q, p)
	if err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("The product already has a price for this billing cycle").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to update price").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(res, "price", p.ID)
}

func (r *priceRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM prices WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ierr.WithError(err).
				WithHint("Subscriptions still reference this price").
				Mark(ierr.ErrInvalidOperation)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete price").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(res, "price", id)
}

func (r *priceRepository) DeleteByProduct(ctx context.Context, productID string) error {
	const q = `DELETE FROM prices WHERE product_id = $1`

	if _, err := r.db.ExecContext(ctx, q, productID); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete prices").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
