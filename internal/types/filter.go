package types

import (
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/samber/lo"
)

const (
	filterDefaultLimit = 50
	filterMaxLimit     = 1000

	// FilterValueAll disables a field filter.
	FilterValueAll = "all"

	DefaultSortField = "created_at"
	DefaultPageSize  = 10
)

// SortDirection orders a listing ascending or descending.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

func (d SortDirection) Validate() error {
	switch d {
	case SortDirectionAsc, SortDirectionDesc, "":
		return nil
	}
	return ierr.NewError("invalid sort direction").
		WithHint("Sort direction must be asc or desc").
		WithReportableDetails(map[string]interface{}{
			"direction": d,
		}).
		Mark(ierr.ErrValidation)
}

// QueryFilter is the shared limit/offset/sort block embedded by entity
// filters used at the repository level.
type QueryFilter struct {
	Limit  *int           `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int           `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Sort   *string        `json:"sort,omitempty" form:"sort" validate:"omitempty"`
	Order  *SortDirection `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// NewDefaultQueryFilter creates a filter with sane pagination defaults.
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(filterDefaultLimit),
		Offset: lo.ToPtr(0),
		Sort:   lo.ToPtr(DefaultSortField),
		Order:  lo.ToPtr(SortDirectionDesc),
	}
}

// NewNoLimitQueryFilter creates a filter that fetches the full collection,
// used when the caller aggregates over a snapshot.
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Offset: lo.ToPtr(0),
		Sort:   lo.ToPtr(DefaultSortField),
		Order:  lo.ToPtr(SortDirectionDesc),
	}
}

func (f *QueryFilter) Validate() error {
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > filterMaxLimit) {
		return ierr.NewError("invalid limit").
			WithHint("Limit must be between 1 and 1000").
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("Offset must not be negative").
			Mark(ierr.ErrValidation)
	}
	if f.Order != nil {
		if err := f.Order.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return filterDefaultLimit
	}
	return *f.Limit
}

func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f *QueryFilter) GetSort() string {
	if f == nil || f.Sort == nil {
		return DefaultSortField
	}
	return *f.Sort
}

func (f *QueryFilter) GetOrder() SortDirection {
	if f == nil || f.Order == nil {
		return SortDirectionDesc
	}
	return *f.Order
}

func (f *QueryFilter) IsUnlimited() bool {
	return f != nil && f.Limit == nil
}

// ProductFilter narrows a product listing at the repository level.
type ProductFilter struct {
	*QueryFilter

	CategoryID     string `json:"category_id,omitempty" form:"category_id"`
	ConnectionType string `json:"connection_type,omitempty" form:"connection_type"`
	ActiveOnly     bool   `json:"active_only,omitempty" form:"active_only"`
	FeaturedOnly   bool   `json:"featured_only,omitempty" form:"featured_only"`
}

func NewProductFilter() *ProductFilter {
	return &ProductFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitProductFilter() *ProductFilter {
	return &ProductFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *ProductFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.ConnectionType != "" && f.ConnectionType != FilterValueAll {
		if err := ConnectionType(f.ConnectionType).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SubscriptionFilter narrows a subscription listing at the repository level.
type SubscriptionFilter struct {
	*QueryFilter

	UserID string             `json:"user_id,omitempty" form:"user_id"`
	Status SubscriptionStatus `json:"status,omitempty" form:"status"`
}

func NewSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *SubscriptionFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}
