package price

import (
	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
)

// Price is one billing option for a product. A product carries at most one
// price per billing cycle.
type Price struct {
	ID           string             `db:"id" json:"id"`
	ProductID    string             `db:"product_id" json:"product_id"`
	Amount       decimal.Decimal    `db:"amount" json:"amount"`
	BillingCycle types.BillingCycle `db:"billing_cycle" json:"billing_cycle"`
	types.BaseModel
}

// MonthlyEquivalent normalizes an amount to a per-month rate.
//
// Formula: monthly = amount / cycle_months
//
// Unknown cycles count as one month, so the division never panics.
func MonthlyEquivalent(amount decimal.Decimal, cycle types.BillingCycle) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(int64(cycle.Months())))
}

// SavingsPercent returns how much cheaper planAmount is than paying the
// monthly baseline for the same period, as a percentage.
//
// Formula: ((baseline * cycle_months) - plan) / (baseline * cycle_months) * 100
//
// A zero baseline or plan amount yields 0 rather than NaN or infinity.
func SavingsPercent(monthlyBaseline, planAmount decimal.Decimal, cycle types.BillingCycle) decimal.Decimal {
	if monthlyBaseline.IsZero() || planAmount.IsZero() {
		return decimal.Zero
	}

	fullPeriod := monthlyBaseline.Mul(decimal.NewFromInt(int64(cycle.Months())))
	if fullPeriod.IsZero() {
		return decimal.Zero
	}

	return fullPeriod.Sub(planAmount).
		Div(fullPeriod).
		Mul(decimal.NewFromInt(100))
}

// MonthlyRate returns the price's own monthly equivalent.
func (p *Price) MonthlyRate() decimal.Decimal {
	return MonthlyEquivalent(p.Amount, p.BillingCycle)
}
