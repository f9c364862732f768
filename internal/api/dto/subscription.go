package dto

import (
	"context"
	"time"

	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/netserve/catalog/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateSubscriptionRequest struct {
	PriceID   string     `json:"price_id" validate:"required"`
	UserID    string     `json:"user_id"`
	StartDate *time.Time `json:"start_date"`
	AutoRenew bool       `json:"auto_renew"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToSubscription builds a pending subscription for the requested price. The
// end date spans the price's billing cycle from the start date.
func (r *CreateSubscriptionRequest) ToSubscription(ctx context.Context, cycle types.BillingCycle, now time.Time) *subscription.Subscription {
	start := now
	if r.StartDate != nil {
		start = *r.StartDate
	}
	userID := r.UserID
	if userID == "" {
		userID = types.GetUserID(ctx)
	}
	return &subscription.Subscription{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		UserID:    userID,
		PriceID:   r.PriceID,
		Status:    types.SubscriptionStatusPendingApproval,
		StartDate: start,
		EndDate:   cycle.EndDate(start),
		AutoRenew: r.AutoRenew,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type ApproveSubscriptionRequest struct {
	Notes string `json:"notes"`
}

func (r *ApproveSubscriptionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type RejectSubscriptionRequest struct {
	Notes string `json:"notes" validate:"required"`
}

func (r *RejectSubscriptionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return ierr.NewError("rejection notes are required").
			WithHint("Provide a reason when rejecting a subscription").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type CancelSubscriptionRequest struct {
	Notes string `json:"notes" validate:"required"`
}

func (r *CancelSubscriptionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return ierr.NewError("cancellation notes are required").
			WithHint("Provide a reason when cancelling a subscription").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type SubscriptionResponse struct {
	*subscription.Subscription
	Message string `json:"message,omitempty"`
}

// SubscriptionListItem is the flattened row the subscriptions listing shows.
// Fields resolved through the price and product references degrade to
// placeholders when a reference is missing instead of failing the listing.
type SubscriptionListItem struct {
	*subscription.Subscription
	ProductName  string             `json:"product_name"`
	CategoryName string             `json:"category_name"`
	Amount       decimal.Decimal    `json:"amount"`
	BillingCycle types.BillingCycle `json:"billing_cycle"`
	MonthlyRate  decimal.Decimal    `json:"monthly_rate"`
}

type SubscriptionListingRequest struct {
	types.ListingParams
}

func (r *SubscriptionListingRequest) Validate() error {
	return r.ListingParams.Validate()
}

type ListSubscriptionsResponse struct {
	Items      []*SubscriptionListItem  `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
