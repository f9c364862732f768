package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/netserve/catalog/internal/domain/category"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
)

type categoryRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewCategoryRepository creates a sqlx-backed category repository
func NewCategoryRepository(db *sqlx.DB, log *logger.Logger) category.Repository {
	return &categoryRepository{db: db, log: log}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	const q = `
		INSERT INTO categories (id, name, created_at, updated_at, created_by, updated_by)
		VALUES (:id, :name, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.NamedExecContext(ctx, q, c); err != nil {
		if isUniqueViolation(err) {
			return ierr.WithError(err).
				WithHint("A category with this name already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create category").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (*category.Category, error) {
	const q = `SELECT * FROM categories WHERE id = $1`

	var c category.Category
	if err := r.db.GetContext(ctx, &c, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("category not found").
				WithHint("Category not found").
				WithReportableDetails(map[string]interface{}{
					"id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch category").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	const q = `SELECT * FROM categories ORDER BY name`

	categories := make([]*category.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list categories").
			Mark(ierr.ErrDatabase)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	const q = `
		UPDATE categories
		SET name = :name, updated_at = :updated_at, updated_by = :updated_by
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, q, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update category").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(res, "category", c.ID)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM categories WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete category").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(res, "category", id)
}
