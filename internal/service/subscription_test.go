package service

import (
	"testing"
	"time"

	"github.com/netserve/catalog/internal/api/dto"
	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/testutil"
	"github.com/netserve/catalog/internal/types"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
	params  ServiceParams
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.params = ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		ProductRepo:  stores.ProductRepo,
		PriceRepo:    stores.PriceRepo,
		SubRepo:      stores.SubRepo,
		CategoryRepo: stores.CategoryRepo,
	}
	s.service = NewSubscriptionService(s.params)
	s.seedCatalog()
}

// seedCatalog creates a category, an active product, and a monthly price.
func (s *SubscriptionServiceSuite) seedCatalog() {
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.CategoryRepo.Create(ctx, testCategory("cat_1", "Residential")))
	s.NoError(stores.ProductRepo.Create(ctx, testProduct("prod_1", "cat_1", "FIBER-100", true)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_1", "prod_1", 120000, types.BILLING_CYCLE_MONTHLY)))
}

func (s *SubscriptionServiceSuite) createPending() *subscription.Subscription {
	resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		PriceID: "price_1",
	})
	s.Require().NoError(err)
	return resp.Subscription
}

func (s *SubscriptionServiceSuite) TestCreateSubscription() {
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		PriceID:   "price_1",
		StartDate: &start,
		AutoRenew: true,
	})
	s.NoError(err)
	s.Equal(types.SubscriptionStatusPendingApproval, resp.Status)
	s.NotEmpty(resp.SubscriptionNumber)
	s.Equal("user_test", resp.UserID)
	s.True(resp.AutoRenew)

	// End date spans one billing cycle with day clamping.
	s.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), resp.EndDate)
	s.Nil(resp.NextBillingDate)
}

func (s *SubscriptionServiceSuite) TestCreateSubscriptionUnknownPrice() {
	_, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		PriceID: "price_missing",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestCreateSubscriptionInactiveProduct() {
	ctx := s.GetContext()
	stores := s.GetStores()
	s.NoError(stores.ProductRepo.Create(ctx, testProduct("prod_2", "cat_1", "DSL-10", false)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_2", "prod_2", 50000, types.BILLING_CYCLE_MONTHLY)))

	_, err := s.service.CreateSubscription(ctx, dto.CreateSubscriptionRequest{PriceID: "price_2"})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestApproveSubscription() {
	sub := s.createPending()
	ctx := s.GetContextWithCapabilities("approve_subscriptions")

	resp, err := s.service.ApproveSubscription(ctx, sub.ID, dto.ApproveSubscriptionRequest{Notes: "verified payment"})
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, resp.Status)
	s.Require().NotNil(resp.ApprovedBy)
	s.Equal("user_test", *resp.ApprovedBy)
	s.NotNil(resp.ApprovedAt)
	s.Require().NotNil(resp.NextBillingDate)
	s.Equal(types.BILLING_CYCLE_MONTHLY.EndDate(sub.StartDate), *resp.NextBillingDate)
	s.Require().NotNil(resp.ApprovalNotes)
	s.Equal("verified payment", *resp.ApprovalNotes)
}

func (s *SubscriptionServiceSuite) TestApproveWithoutCapability() {
	sub := s.createPending()

	_, err := s.service.ApproveSubscription(s.GetContext(), sub.ID, dto.ApproveSubscriptionRequest{})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))

	// The store is untouched.
	stored, getErr := s.GetStores().SubRepo.Get(s.GetContext(), sub.ID)
	s.NoError(getErr)
	s.Equal(types.SubscriptionStatusPendingApproval, stored.Status)
}

func (s *SubscriptionServiceSuite) TestRejectRequiresNotes() {
	sub := s.createPending()
	ctx := s.GetContextWithCapabilities("reject_subscriptions")

	_, err := s.service.RejectSubscription(ctx, sub.ID, dto.RejectSubscriptionRequest{Notes: ""})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	stored, getErr := s.GetStores().SubRepo.Get(ctx, sub.ID)
	s.NoError(getErr)
	s.Equal(types.SubscriptionStatusPendingApproval, stored.Status)
	s.Nil(stored.RejectedAt)
}

func (s *SubscriptionServiceSuite) TestRejectSubscription() {
	sub := s.createPending()
	ctx := s.GetContextWithCapabilities("reject_subscriptions")

	resp, err := s.service.RejectSubscription(ctx, sub.ID, dto.RejectSubscriptionRequest{Notes: "failed credit check"})
	s.NoError(err)
	s.Equal(types.SubscriptionStatusRejected, resp.Status)
	s.NotNil(resp.RejectedAt)
}

func (s *SubscriptionServiceSuite) TestCancelRequiresNotes() {
	sub := s.approvedSubscription()
	ctx := s.GetContextWithCapabilities("cancel_subscriptions")

	_, err := s.service.CancelSubscription(ctx, sub.ID, dto.CancelSubscriptionRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SubscriptionServiceSuite) TestCancelSubscription() {
	sub := s.approvedSubscription()
	ctx := s.GetContextWithCapabilities("cancel_subscriptions")

	resp, err := s.service.CancelSubscription(ctx, sub.ID, dto.CancelSubscriptionRequest{Notes: "customer moved"})
	s.NoError(err)
	s.Equal(types.SubscriptionStatusCancelled, resp.Status)
	s.NotNil(resp.CancelledAt)
	s.Nil(resp.NextBillingDate)
	s.Require().NotNil(resp.CancellationNotes)
	s.Equal("customer moved", *resp.CancellationNotes)
}

func (s *SubscriptionServiceSuite) TestCancelPendingIsRejected() {
	sub := s.createPending()
	ctx := s.GetContextWithCapabilities("cancel_subscriptions")

	_, err := s.service.CancelSubscription(ctx, sub.ID, dto.CancelSubscriptionRequest{Notes: "n/a"})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestTerminalStatesRejectAllActions() {
	sub := s.createPending()
	rejectCtx := s.GetContextWithCapabilities("reject_subscriptions")
	_, err := s.service.RejectSubscription(rejectCtx, sub.ID, dto.RejectSubscriptionRequest{Notes: "no"})
	s.Require().NoError(err)

	approveCtx := s.GetContextWithCapabilities("approve_subscriptions")
	_, err = s.service.ApproveSubscription(approveCtx, sub.ID, dto.ApproveSubscriptionRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	cancelCtx := s.GetContextWithCapabilities("cancel_subscriptions")
	_, err = s.service.CancelSubscription(cancelCtx, sub.ID, dto.CancelSubscriptionRequest{Notes: "no"})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestExpireDueSubscriptions() {
	ctx := s.GetContext()
	stores := s.GetStores()

	past := time.Now().UTC().AddDate(0, -2, 0)
	future := time.Now().UTC().AddDate(0, 2, 0)

	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_due", "price_1", types.SubscriptionStatusActive, past)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_current", "price_1", types.SubscriptionStatusActive, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_pending", "price_1", types.SubscriptionStatusPendingApproval, past)))

	expired, renewed, err := s.service.ExpireDueSubscriptions(ctx)
	s.NoError(err)
	s.Equal(1, expired)
	s.Equal(0, renewed)

	due, err := stores.SubRepo.Get(ctx, "sub_due")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusExpired, due.Status)
	s.Nil(due.NextBillingDate)

	current, err := stores.SubRepo.Get(ctx, "sub_current")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, current.Status)

	// Pending subscriptions never expire, even past their end date.
	pending, err := stores.SubRepo.Get(ctx, "sub_pending")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusPendingApproval, pending.Status)
}

func (s *SubscriptionServiceSuite) TestExpireSweepRenewsAutoRenewing() {
	ctx := s.GetContext()
	stores := s.GetStores()

	past := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	rolling := testSubscription("sub_rolling", "price_1", types.SubscriptionStatusActive, past)
	rolling.AutoRenew = true
	s.NoError(stores.SubRepo.Create(ctx, rolling))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_lapsing", "price_1", types.SubscriptionStatusActive, past)))

	expired, renewed, err := s.service.ExpireDueSubscriptions(ctx)
	s.NoError(err)
	s.Equal(1, expired)
	s.Equal(1, renewed)

	renewedSub, err := stores.SubRepo.Get(ctx, "sub_rolling")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, renewedSub.Status)
	// One monthly cycle forward from the old end date, day clamped.
	s.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), renewedSub.EndDate)
	s.Require().NotNil(renewedSub.NextBillingDate)
	s.Equal(renewedSub.EndDate, *renewedSub.NextBillingDate)

	lapsed, err := stores.SubRepo.Get(ctx, "sub_lapsing")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusExpired, lapsed.Status)
}

func (s *SubscriptionServiceSuite) TestExpireSweepSkipsRenewalWithoutPrice() {
	ctx := s.GetContext()
	stores := s.GetStores()

	past := time.Now().UTC().AddDate(0, -1, 0)
	orphan := testSubscription("sub_orphan", "price_gone", types.SubscriptionStatusActive, past)
	orphan.AutoRenew = true
	s.NoError(stores.SubRepo.Create(ctx, orphan))

	expired, renewed, err := s.service.ExpireDueSubscriptions(ctx)
	s.NoError(err)
	s.Equal(0, expired)
	s.Equal(0, renewed)

	stored, err := stores.SubRepo.Get(ctx, "sub_orphan")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, stored.Status)
	s.Equal(past, stored.EndDate)
}

func (s *SubscriptionServiceSuite) approvedSubscription() *subscription.Subscription {
	sub := s.createPending()
	ctx := s.GetContextWithCapabilities("approve_subscriptions")
	resp, err := s.service.ApproveSubscription(ctx, sub.ID, dto.ApproveSubscriptionRequest{})
	s.Require().NoError(err)
	return resp.Subscription
}

func testSubscription(id, priceID string, status types.SubscriptionStatus, endDate time.Time) *subscription.Subscription {
	return &subscription.Subscription{
		ID:                 id,
		SubscriptionNumber: "SUB-" + id,
		UserID:             "user_test",
		PriceID:            priceID,
		Status:             status,
		StartDate:          endDate.AddDate(0, -1, 0),
		EndDate:            endDate,
		BaseModel:          types.BaseModel{CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()},
	}
}
