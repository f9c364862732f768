package types

// ListingParams are the view parameters applied to a full entity snapshot:
// free-text search, exact field filters, a sort, and 1-indexed pagination.
type ListingParams struct {
	Search        string            `json:"search" form:"search"`
	Filters       map[string]string `json:"filters" form:"filters"`
	SortField     string            `json:"sort_field" form:"sort_field"`
	SortDirection SortDirection     `json:"sort_direction" form:"sort_direction"`
	Page          int               `json:"page" form:"page"`
	PageSize      int               `json:"page_size" form:"page_size"`
}

// Normalize fills defaults so zero-valued params behave like "show page one
// of everything".
func (p ListingParams) Normalize() ListingParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.SortDirection == "" {
		p.SortDirection = SortDirectionAsc
	}
	return p
}

func (p ListingParams) Validate() error {
	return p.SortDirection.Validate()
}

// PaginationResponse describes the window a listing response covers.
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationResponse computes the page window for a filtered total.
// A zero total yields zero pages, never a division error.
func NewPaginationResponse(page, pageSize, totalItems int) PaginationResponse {
	totalPages := 0
	if pageSize > 0 && totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return PaginationResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
