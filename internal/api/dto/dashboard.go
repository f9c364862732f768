package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardResponse is the operator overview: product and subscription
// counts, recurring revenue, and upcoming work.
type DashboardResponse struct {
	TotalProducts    int `json:"total_products"`
	ActiveProducts   int `json:"active_products"`
	FeaturedProducts int `json:"featured_products"`
	TotalCategories  int `json:"total_categories"`

	TotalSubscriptions    int            `json:"total_subscriptions"`
	SubscriptionsByStatus map[string]int `json:"subscriptions_by_status"`
	NeedsApproval         int            `json:"needs_approval"`

	// MonthlyRecurringRevenue sums the monthly equivalent of every active
	// subscription's price.
	MonthlyRecurringRevenue decimal.Decimal `json:"monthly_recurring_revenue"`

	// RenewalsDueSoon counts active subscriptions whose next billing date
	// falls within the next 30 days.
	RenewalsDueSoon int `json:"renewals_due_soon"`

	ActivePercent float64 `json:"active_percent"`
}
