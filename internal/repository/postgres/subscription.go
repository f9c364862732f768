package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
)

// subscriptionSortColumns whitelists sortable columns for subscription
// listings.
var subscriptionSortColumns = map[string]string{
	"created_at":          "created_at",
	"updated_at":          "updated_at",
	"start_date":          "start_date",
	"end_date":            "end_date",
	"next_billing_date":   "next_billing_date",
	"subscription_number": "subscription_number",
	"status":              "status",
}

type subscriptionRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewSubscriptionRepository creates a sqlx-backed subscription repository
func NewSubscriptionRepository(db *sqlx.DB, log *logger.Logger) subscription.Repository {
	return &subscriptionRepository{db: db, log: log}
}

func (r *subscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	const q = `
		INSERT INTO subscriptions (
			id, subscription_number, user_id, price_id, status, start_date, end_date,
			next_billing_date, auto_renew, approved_by, approved_at, approval_notes,
			rejected_at, cancelled_at, cancellation_notes,
			created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :subscription_number, :user_id, :price_id, :status, :start_date, :end_date,
			:next_billing_date, :auto_renew, :approved_by, :approved_at, :approval_notes,
			:rejected_at, :cancelled_at, :cancellation_notes,
			:created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, q, s); err != nil {
		if isForeignKeyViolation(err) {
			return ierr.WithError(err).
				WithHint("Price does not exist").
				WithReportableDetails(map[string]interface{}{
					"price_id": s.PriceID,
				}).
				Mark(ierr.ErrValidation)
		}
		return ierr.WithError(err).
			WithHint("Failed to create subscription").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	const q = `SELECT * FROM subscriptions WHERE id = $1`

	var s subscription.Subscription
	if err := r.db.GetContext(ctx, &s, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("subscription not found").
				WithHint("Subscription not found").
				WithReportableDetails(map[string]interface{}{
					"id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch subscription").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

const subscriptionListWhere = `
	WHERE ($1 = '' OR user_id = $1)
	AND ($2 = '' OR status = $2)`

func (r *subscriptionRepository) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	if filter == nil {
		filter = types.NewSubscriptionFilter()
	}

	q := `SELECT * FROM subscriptions` + subscriptionListWhere +
		orderByClause(filter.QueryFilter, subscriptionSortColumns) +
		paginationClause(filter.QueryFilter)

	subs := make([]*subscription.Subscription, 0)
	err := r.db.SelectContext(ctx, &subs, q, filter.UserID, string(filter.Status))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			Mark(ierr.ErrDatabase)
	}
	return subs, nil
}

func (r *subscriptionRepository) Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error) {
	if filter == nil {
		filter = types.NewSubscriptionFilter()
	}

	q := `SELECT COUNT(1) FROM subscriptions` + subscriptionListWhere

	var count int
	if err := r.db.GetContext(ctx, &count, q, filter.UserID, string(filter.Status)); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count subscriptions").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	const q = `
		UPDATE subscriptions SET
			status = :status, start_date = :start_date, end_date = :end_date,
			next_billing_date = :next_billing_date, auto_renew = :auto_renew,
			approved_by = :approved_by, approved_at = :approved_at,
			approval_notes = :approval_notes, rejected_at = :rejected_at,
			cancelled_at = :cancelled_at, cancellation_notes = :cancellation_notes,
			updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, q, s)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update subscription").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(res, "subscription", s.ID)
}

func (r *subscriptionRepository) CountByPriceIDs(ctx context.Context, priceIDs []string) (int, error) {
	if len(priceIDs) == 0 {
		return 0, nil
	}

	q, args, err := sqlx.In(`SELECT COUNT(1) FROM subscriptions WHERE price_id IN (?)`, priceIDs)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count subscriptions").
			Mark(ierr.ErrDatabase)
	}
	q = r.db.Rebind(q)

	var count int
	if err := r.db.GetContext(ctx, &count, q, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count subscriptions").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *subscriptionRepository) ListActivePastEndDate(ctx context.Context, before time.Time) ([]*subscription.Subscription, error) {
	const q = `SELECT * FROM subscriptions WHERE status = $1 AND end_date < $2`

	subs := make([]*subscription.Subscription, 0)
	err := r.db.SelectContext(ctx, &subs, q, types.SubscriptionStatusActive, before)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list past-due subscriptions").
			Mark(ierr.ErrDatabase)
	}
	return subs, nil
}
