package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingParamsNormalize(t *testing.T) {
	normalized := ListingParams{}.Normalize()
	assert.Equal(t, 1, normalized.Page)
	assert.Equal(t, DefaultPageSize, normalized.PageSize)
	assert.Equal(t, SortDirectionAsc, normalized.SortDirection)

	explicit := ListingParams{Page: 3, PageSize: 25, SortDirection: SortDirectionDesc}.Normalize()
	assert.Equal(t, 3, explicit.Page)
	assert.Equal(t, 25, explicit.PageSize)
	assert.Equal(t, SortDirectionDesc, explicit.SortDirection)
}

func TestNewPaginationResponse(t *testing.T) {
	resp := NewPaginationResponse(1, 10, 25)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 25, resp.TotalItems)

	// Exact multiple.
	assert.Equal(t, 2, NewPaginationResponse(1, 10, 20).TotalPages)

	// Zero total never divides by zero.
	assert.Equal(t, 0, NewPaginationResponse(1, 10, 0).TotalPages)
	assert.Equal(t, 0, NewPaginationResponse(1, 0, 5).TotalPages)
}
