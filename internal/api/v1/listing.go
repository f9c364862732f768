package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
)

// bindListingRequest parses catalog view parameters from the query string.
// Field filters arrive as filters[field]=value pairs.
func bindListingRequest(c *gin.Context) (types.ListingParams, error) {
	params := types.ListingParams{
		Search:        c.Query("search"),
		Filters:       c.QueryMap("filters"),
		SortField:     c.Query("sort_field"),
		SortDirection: types.SortDirection(c.Query("sort_direction")),
	}

	var err error
	if params.Page, err = queryInt(c, "page"); err != nil {
		return params, err
	}
	if params.PageSize, err = queryInt(c, "page_size"); err != nil {
		return params, err
	}

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Query parameter %s must be an integer", key).
			Mark(ierr.ErrValidation)
	}
	return value, nil
}
