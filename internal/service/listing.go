package service

import (
	"sort"
	"strings"
	"time"

	"github.com/netserve/catalog/internal/types"
)

// SortKey is a typed comparison key. Numeric keys (numbers, dates as epoch
// milliseconds) compare by value; everything else compares lexicographically.
// Missing values sort lowest via the zero key.
type SortKey struct {
	Str       string
	Num       float64
	IsNumeric bool
}

// StringKey builds a lexicographic sort key.
func StringKey(s string) SortKey {
	return SortKey{Str: s}
}

// NumericKey builds a numeric sort key.
func NumericKey(f float64) SortKey {
	return SortKey{Num: f, IsNumeric: true}
}

// TimeKey builds a numeric sort key from a time; nil times sort as epoch 0.
func TimeKey(t *time.Time) SortKey {
	if t == nil {
		return SortKey{IsNumeric: true}
	}
	return SortKey{Num: float64(t.UnixMilli()), IsNumeric: true}
}

// compare returns a negative, zero, or positive value like strings.Compare.
func (k SortKey) compare(other SortKey) int {
	if k.IsNumeric && other.IsNumeric {
		switch {
		case k.Num < other.Num:
			return -1
		case k.Num > other.Num:
			return 1
		}
		return 0
	}
	return strings.Compare(k.Str, other.Str)
}

// ListingFields teaches the aggregator how to read one entity type.
type ListingFields[T any] struct {
	// SearchText returns the fields matched by the free-text search.
	SearchText func(T) []string
	// FilterValue returns the entity's value for a filter field.
	FilterValue func(T, string) string
	// SortKey returns the entity's sort key for a field.
	SortKey func(T, string) SortKey
}

// ApplyListing filters and sorts a snapshot without mutating it. Search is a
// case-insensitive substring match, field filters are exact equality with
// "all" meaning no constraint, and sorting is stable with the direction
// flipping the comparator rather than the slice.
func ApplyListing[T any](items []T, params types.ListingParams, fields ListingFields[T]) []T {
	params = params.Normalize()

	result := make([]T, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(params.Search))

	for _, item := range items {
		if !matchesSearch(item, search, fields) {
			continue
		}
		if !matchesFilters(item, params.Filters, fields) {
			continue
		}
		result = append(result, item)
	}

	if params.SortField != "" && fields.SortKey != nil {
		direction := 1
		if params.SortDirection == types.SortDirectionDesc {
			direction = -1
		}
		sort.SliceStable(result, func(i, j int) bool {
			a := fields.SortKey(result[i], params.SortField)
			b := fields.SortKey(result[j], params.SortField)
			return a.compare(b)*direction < 0
		})
	}

	return result
}

// Paginate slices a listing. Pages are 1-indexed; out-of-range pages yield an
// empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func matchesSearch[T any](item T, search string, fields ListingFields[T]) bool {
	if search == "" || fields.SearchText == nil {
		return true
	}
	for _, text := range fields.SearchText(item) {
		if strings.Contains(strings.ToLower(text), search) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string, fields ListingFields[T]) bool {
	if len(filters) == 0 || fields.FilterValue == nil {
		return true
	}
	for field, want := range filters {
		if want == "" || want == types.FilterValueAll {
			continue
		}
		if fields.FilterValue(item, field) != want {
			return false
		}
	}
	return true
}
