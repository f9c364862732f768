package types

import (
	"time"

	ierr "github.com/netserve/catalog/internal/errors"
)

// BillingCycle is the recurrence period of a price plan.
type BillingCycle string

const (
	BILLING_CYCLE_MONTHLY     BillingCycle = "monthly"
	BILLING_CYCLE_QUARTERLY   BillingCycle = "quarterly"
	BILLING_CYCLE_SEMI_ANNUAL BillingCycle = "semi_annual"
	BILLING_CYCLE_ANNUAL      BillingCycle = "annual"
)

func (c BillingCycle) String() string {
	return string(c)
}

func (c BillingCycle) Validate() error {
	allowed := []BillingCycle{
		BILLING_CYCLE_MONTHLY,
		BILLING_CYCLE_QUARTERLY,
		BILLING_CYCLE_SEMI_ANNUAL,
		BILLING_CYCLE_ANNUAL,
	}
	for _, b := range allowed {
		if c == b {
			return nil
		}
	}
	return ierr.NewError("invalid billing cycle").
		WithHint("Billing cycle must be one of monthly, quarterly, semi_annual, annual").
		WithReportableDetails(map[string]interface{}{
			"billing_cycle": c,
		}).
		Mark(ierr.ErrValidation)
}

// Months returns the length of the cycle in months. Unrecognized cycles fall
// back to 1 so monthly normalization never divides by zero.
func (c BillingCycle) Months() int {
	switch c {
	case BILLING_CYCLE_MONTHLY:
		return 1
	case BILLING_CYCLE_QUARTERLY:
		return 3
	case BILLING_CYCLE_SEMI_ANNUAL:
		return 6
	case BILLING_CYCLE_ANNUAL:
		return 12
	default:
		return 1
	}
}

// EndDate advances start by one full cycle using calendar-aware month
// arithmetic. Overflowing days clamp to the last day of the target month, so
// 2024-01-31 + monthly yields 2024-02-29 rather than rolling into March.
func (c BillingCycle) EndDate(start time.Time) time.Time {
	return AddMonthsClamped(start, c.Months())
}

// AddMonthsClamped adds months to t, clamping the day of month when the target
// month is shorter than the source day.
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	targetMonth := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(targetMonth.Year(), targetMonth.Month()); day > last {
		day = last
	}
	return time.Date(targetMonth.Year(), targetMonth.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
