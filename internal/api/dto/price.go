package dto

import (
	"context"

	"github.com/netserve/catalog/internal/domain/price"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/netserve/catalog/internal/validator"
	"github.com/shopspring/decimal"
)

type CreatePriceRequest struct {
	ProductID    string             `json:"product_id" validate:"required"`
	Amount       decimal.Decimal    `json:"amount" validate:"required"`
	BillingCycle types.BillingCycle `json:"billing_cycle" validate:"required"`
}

func (r *CreatePriceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.BillingCycle.Validate(); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithHint("Price amount must be zero or positive").
			WithReportableDetails(map[string]any{"amount": r.Amount.String()}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreatePriceRequest) ToPrice(ctx context.Context) *price.Price {
	return &price.Price{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICE),
		ProductID:    r.ProductID,
		Amount:       r.Amount,
		BillingCycle: r.BillingCycle,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePriceRequest struct {
	Amount       decimal.Decimal    `json:"amount" validate:"required"`
	BillingCycle types.BillingCycle `json:"billing_cycle" validate:"required"`
}

func (r *UpdatePriceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.BillingCycle.Validate(); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithHint("Price amount must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type ListPricesResponse struct {
	Items []*PriceResponse `json:"items"`
	Total int              `json:"total"`
}

// NewPriceResponse derives the monthly figures for one price. The monthly
// baseline for the savings calculation is the product's monthly-cycle price;
// pass decimal.Zero when the product has none.
func NewPriceResponse(p *price.Price, monthlyBaseline decimal.Decimal) *PriceResponse {
	return &PriceResponse{
		Price:             p,
		MonthlyEquivalent: p.MonthlyRate(),
		SavingsPercent:    price.SavingsPercent(monthlyBaseline, p.Amount, p.BillingCycle),
	}
}
