package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
)

// isUniqueViolation reports whether err is a postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// isForeignKeyViolation reports whether err is a postgres FK constraint error.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

// requireRowAffected converts a zero-row write into a not-found error.
func requireRowAffected(res sql.Result, entity, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to verify write result").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("%s not found", entity).
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// orderByClause maps a filter's sort field onto a whitelisted column and
// direction. Unknown fields fall back to created_at.
func orderByClause(f *types.QueryFilter, allowed map[string]string) string {
	column, ok := allowed[f.GetSort()]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.GetOrder() == types.SortDirectionAsc {
		direction = "ASC"
	}
	return " ORDER BY " + column + " " + direction
}

// paginationClause renders pagination for a filter; unlimited filters fetch
// the whole collection. Limit and offset are validated integers, safe to
// inline.
func paginationClause(f *types.QueryFilter) string {
	if f.IsUnlimited() {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", f.GetLimit(), f.GetOffset())
}
