package price

import (
	"testing"

	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		cycle  types.BillingCycle
		want   decimal.Decimal
	}{
		{"monthly is identity", decimal.NewFromInt(1200), types.BILLING_CYCLE_MONTHLY, decimal.NewFromInt(1200)},
		{"quarterly divides by three", decimal.NewFromInt(3000), types.BILLING_CYCLE_QUARTERLY, decimal.NewFromInt(1000)},
		{"semi annual divides by six", decimal.NewFromInt(6000), types.BILLING_CYCLE_SEMI_ANNUAL, decimal.NewFromInt(1000)},
		{"annual divides by twelve", decimal.NewFromInt(12000), types.BILLING_CYCLE_ANNUAL, decimal.NewFromInt(1000)},
		{"unknown cycle counts as one month", decimal.NewFromInt(500), types.BillingCycle("weekly"), decimal.NewFromInt(500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyEquivalent(tt.amount, tt.cycle)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSavingsPercent(t *testing.T) {
	// Annual at 10000 against a 1000 monthly baseline saves 2000 of 12000.
	got := SavingsPercent(decimal.NewFromInt(1000), decimal.NewFromInt(10000), types.BILLING_CYCLE_ANNUAL)
	want := decimal.NewFromInt(2000).
		Div(decimal.NewFromInt(12000)).
		Mul(decimal.NewFromInt(100))
	assert.True(t, want.Equal(got), "want %s got %s", want, got)
}

func TestSavingsPercentZeroBaseline(t *testing.T) {
	got := SavingsPercent(decimal.Zero, decimal.NewFromInt(100), types.BILLING_CYCLE_ANNUAL)
	assert.True(t, got.IsZero())
}

func TestSavingsPercentZeroPlanAmount(t *testing.T) {
	got := SavingsPercent(decimal.NewFromInt(100), decimal.Zero, types.BILLING_CYCLE_ANNUAL)
	assert.True(t, got.IsZero())
}

func TestSavingsPercentNegativeWhenPlanCostsMore(t *testing.T) {
	// A quarterly plan priced above three months of the baseline saves
	// nothing; the figure goes negative rather than clamping.
	got := SavingsPercent(decimal.NewFromInt(100), decimal.NewFromInt(400), types.BILLING_CYCLE_QUARTERLY)
	assert.True(t, got.IsNegative())
}

func TestMonthlyRate(t *testing.T) {
	p := &Price{
		Amount:       decimal.NewFromInt(3600),
		BillingCycle: types.BILLING_CYCLE_ANNUAL,
	}
	assert.True(t, decimal.NewFromInt(300).Equal(p.MonthlyRate()))
}
