package subscription

import (
	"time"

	"github.com/netserve/catalog/internal/types"
)

// Subscription binds a customer to a product price over a time window.
type Subscription struct {
	ID                 string                   `db:"id" json:"id"`
	SubscriptionNumber string                   `db:"subscription_number" json:"subscription_number"`
	UserID             string                   `db:"user_id" json:"user_id"`
	PriceID            string                   `db:"price_id" json:"price_id"`
	Status             types.SubscriptionStatus `db:"status" json:"status"`
	StartDate          time.Time                `db:"start_date" json:"start_date"`
	EndDate            time.Time                `db:"end_date" json:"end_date"`
	NextBillingDate    *time.Time               `db:"next_billing_date" json:"next_billing_date,omitempty"`
	AutoRenew          bool                     `db:"auto_renew" json:"auto_renew"`
	ApprovedBy         *string                  `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt         *time.Time               `db:"approved_at" json:"approved_at,omitempty"`
	ApprovalNotes      *string                  `db:"approval_notes" json:"approval_notes,omitempty"`
	RejectedAt         *time.Time               `db:"rejected_at" json:"rejected_at,omitempty"`
	CancelledAt        *time.Time               `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancellationNotes  *string                  `db:"cancellation_notes" json:"cancellation_notes,omitempty"`
	types.BaseModel
}

// IsRenewalDueWithin reports whether the subscription is active with a next
// billing date inside [now, now+window].
func (s *Subscription) IsRenewalDueWithin(now time.Time, window time.Duration) bool {
	if s.Status != types.SubscriptionStatusActive || s.NextBillingDate == nil {
		return false
	}
	next := *s.NextBillingDate
	return !next.Before(now) && !next.After(now.Add(window))
}

// IsPastDue reports whether an active subscription has run past its end date.
func (s *Subscription) IsPastDue(now time.Time) bool {
	return s.Status == types.SubscriptionStatusActive && now.After(s.EndDate)
}
