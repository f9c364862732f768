package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingCycleMonths(t *testing.T) {
	assert.Equal(t, 1, BILLING_CYCLE_MONTHLY.Months())
	assert.Equal(t, 3, BILLING_CYCLE_QUARTERLY.Months())
	assert.Equal(t, 6, BILLING_CYCLE_SEMI_ANNUAL.Months())
	assert.Equal(t, 12, BILLING_CYCLE_ANNUAL.Months())

	// Unknown cycles count as one month so normalization never divides by zero.
	assert.Equal(t, 1, BillingCycle("weekly").Months())
	assert.Equal(t, 1, BillingCycle("").Months())
}

func TestBillingCycleValidate(t *testing.T) {
	assert.NoError(t, BILLING_CYCLE_MONTHLY.Validate())
	assert.NoError(t, BILLING_CYCLE_ANNUAL.Validate())
	assert.Error(t, BillingCycle("weekly").Validate())
	assert.Error(t, BillingCycle("").Validate())
}

func TestBillingCycleEndDate(t *testing.T) {
	tests := []struct {
		name  string
		cycle BillingCycle
		start time.Time
		want  time.Time
	}{
		{
			name:  "monthly mid-month",
			cycle: BILLING_CYCLE_MONTHLY,
			start: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "monthly clamps jan 31 to leap-year feb 29",
			cycle: BILLING_CYCLE_MONTHLY,
			start: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "monthly clamps jan 31 to feb 28 outside leap years",
			cycle: BILLING_CYCLE_MONTHLY,
			start: time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "quarterly",
			cycle: BILLING_CYCLE_QUARTERLY,
			start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "semi annual clamps aug 31 to feb 28",
			cycle: BILLING_CYCLE_SEMI_ANNUAL,
			start: time.Date(2022, 8, 31, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "annual crosses year boundary",
			cycle: BILLING_CYCLE_ANNUAL,
			start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cycle.EndDate(tt.start))
		})
	}
}

func TestAddMonthsClampedPreservesClock(t *testing.T) {
	start := time.Date(2024, 1, 31, 10, 30, 45, 0, time.UTC)
	got := AddMonthsClamped(start, 1)
	assert.Equal(t, time.Date(2024, 2, 29, 10, 30, 45, 0, time.UTC), got)
}
