package service

import (
	"testing"
	"time"

	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/testutil"
	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DashboardService
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewDashboardService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		ProductRepo:  stores.ProductRepo,
		PriceRepo:    stores.PriceRepo,
		SubRepo:      stores.SubRepo,
		CategoryRepo: stores.CategoryRepo,
	})
}

func (s *DashboardServiceSuite) TestRequiresCapability() {
	_, err := s.service.GetDashboard(s.GetContext())
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *DashboardServiceSuite) TestEmptyDashboard() {
	ctx := s.GetContextWithCapabilities("view_dashboard")
	resp, err := s.service.GetDashboard(ctx)
	s.NoError(err)
	s.Equal(0, resp.TotalProducts)
	s.Equal(0, resp.TotalSubscriptions)
	s.True(resp.MonthlyRecurringRevenue.IsZero())
	s.Equal(float64(0), resp.ActivePercent)
}

func (s *DashboardServiceSuite) TestMonthlyRecurringRevenue() {
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.CategoryRepo.Create(ctx, testCategory("cat_1", "Residential")))
	s.NoError(stores.ProductRepo.Create(ctx, testProduct("prod_1", "cat_1", "FIBER-100", true)))

	// 120000 monthly, 300000 quarterly, and an annual price with no active
	// subscription: MRR = 120000 + 100000 = 220000.
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_m", "prod_1", 120000, types.BILLING_CYCLE_MONTHLY)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_q", "prod_1", 300000, types.BILLING_CYCLE_QUARTERLY)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_a", "prod_1", 900000, types.BILLING_CYCLE_ANNUAL)))

	future := time.Now().UTC().AddDate(0, 1, 0)
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_m", "price_m", types.SubscriptionStatusActive, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_q", "price_q", types.SubscriptionStatusActive, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_a", "price_a", types.SubscriptionStatusPendingApproval, future)))

	resp, err := s.service.GetDashboard(s.GetContextWithCapabilities("view_dashboard"))
	s.NoError(err)
	s.True(decimal.NewFromInt(220000).Equal(resp.MonthlyRecurringRevenue),
		"want 220000 got %s", resp.MonthlyRecurringRevenue)
	s.Equal(1, resp.NeedsApproval)
	s.Equal(3, resp.TotalSubscriptions)
	s.Equal(2, resp.SubscriptionsByStatus["active"])
	s.Equal(1, resp.SubscriptionsByStatus["pending_approval"])
}

func (s *DashboardServiceSuite) TestRenewalsDueSoon() {
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.CategoryRepo.Create(ctx, testCategory("cat_1", "Residential")))
	s.NoError(stores.ProductRepo.Create(ctx, testProduct("prod_1", "cat_1", "FIBER-100", true)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_1", "prod_1", 100000, types.BILLING_CYCLE_MONTHLY)))

	now := time.Now().UTC()
	endDate := now.AddDate(1, 0, 0)

	within := testSubscription("sub_due", "price_1", types.SubscriptionStatusActive, endDate)
	soon := now.AddDate(0, 0, 10)
	within.NextBillingDate = &soon

	beyond := testSubscription("sub_far", "price_1", types.SubscriptionStatusActive, endDate)
	far := now.AddDate(0, 0, 45)
	beyond.NextBillingDate = &far

	// Non-active subscriptions never count, billing date or not.
	cancelled := testSubscription("sub_cancelled", "price_1", types.SubscriptionStatusCancelled, endDate)
	cancelled.NextBillingDate = &soon

	// Active without a billing date never counts.
	noDate := testSubscription("sub_nodate", "price_1", types.SubscriptionStatusActive, endDate)

	for _, sub := range []*subscription.Subscription{within, beyond, cancelled, noDate} {
		s.NoError(stores.SubRepo.Create(ctx, sub))
	}

	resp, err := s.service.GetDashboard(s.GetContextWithCapabilities("view_dashboard"))
	s.NoError(err)
	s.Equal(1, resp.RenewalsDueSoon)
}

func (s *DashboardServiceSuite) TestActivePercent() {
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.CategoryRepo.Create(ctx, testCategory("cat_1", "Residential")))
	s.NoError(stores.ProductRepo.Create(ctx, testProduct("prod_1", "cat_1", "FIBER-100", true)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_1", "prod_1", 100000, types.BILLING_CYCLE_MONTHLY)))

	future := time.Now().UTC().AddDate(0, 1, 0)
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_1", "price_1", types.SubscriptionStatusActive, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_2", "price_1", types.SubscriptionStatusActive, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_3", "price_1", types.SubscriptionStatusRejected, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_4", "price_1", types.SubscriptionStatusExpired, future)))

	resp, err := s.service.GetDashboard(s.GetContextWithCapabilities("view_dashboard"))
	s.NoError(err)
	s.InDelta(50.0, resp.ActivePercent, 0.001)
}
