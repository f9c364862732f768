package dto

import (
	"context"

	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/domain/product"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/netserve/catalog/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name              string               `json:"name" validate:"required,max=255"`
	Code              string               `json:"code" validate:"required,max=64"`
	Description       string               `json:"description"`
	CategoryID        string               `json:"category_id" validate:"required"`
	Bandwidth         int                  `json:"bandwidth" validate:"min=0"`
	BandwidthUnit     types.BandwidthUnit  `json:"bandwidth_unit" validate:"required"`
	ConnectionType    types.ConnectionType `json:"connection_type" validate:"required"`
	MinContractMonths int                  `json:"min_contract_months" validate:"min=0"`
	UptimeGuarantee   float64              `json:"uptime_guarantee" validate:"min=0,max=100"`
	IsRecurring       bool                 `json:"is_recurring"`
	IsActive          bool                 `json:"is_active"`
	IsFeatured        bool                 `json:"is_featured"`
	SetupFee          decimal.Decimal      `json:"setup_fee"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.BandwidthUnit.Validate(); err != nil {
		return err
	}
	if err := r.ConnectionType.Validate(); err != nil {
		return err
	}
	if r.SetupFee.IsNegative() {
		return ierr.NewError("setup fee cannot be negative").
			WithHint("Setup fee must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	return &product.Product{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:              r.Name,
		Code:              r.Code,
		Description:       r.Description,
		CategoryID:        r.CategoryID,
		Bandwidth:         r.Bandwidth,
		BandwidthUnit:     r.BandwidthUnit,
		ConnectionType:    r.ConnectionType,
		MinContractMonths: r.MinContractMonths,
		UptimeGuarantee:   r.UptimeGuarantee,
		IsRecurring:       r.IsRecurring,
		IsActive:          r.IsActive,
		IsFeatured:        r.IsFeatured,
		SetupFee:          r.SetupFee,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

// UpdateProductRequest replaces the full editable field set.
type UpdateProductRequest struct {
	CreateProductRequest
}

type ProductResponse struct {
	*product.Product
	Category *category.Category `json:"category,omitempty"`
	Prices   []*PriceResponse   `json:"prices,omitempty"`
}

// CategoryName degrades to a placeholder when the category reference does not
// resolve.
func (r *ProductResponse) CategoryName() string {
	if r.Category == nil {
		return "-"
	}
	return r.Category.Name
}

type CreateProductResponse struct {
	*ProductResponse
	Message string `json:"message,omitempty"`
}

// ProductListingRequest selects a filtered, sorted page of the product
// snapshot.
type ProductListingRequest struct {
	types.ListingParams
}

func (r *ProductListingRequest) Validate() error {
	return r.ListingParams.Validate()
}

type ListProductsResponse struct {
	Items      []*ProductResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}

// PriceResponse carries a price along with its derived monthly figures.
type PriceResponse struct {
	*price.Price
	MonthlyEquivalent decimal.Decimal `json:"monthly_equivalent"`
	SavingsPercent    decimal.Decimal `json:"savings_percent"`
}
