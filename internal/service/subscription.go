package service

import (
	"context"
	"fmt"
	"time"

	"github.com/netserve/catalog/internal/api/dto"
	"github.com/netserve/catalog/internal/domain/subscription"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/netserve/catalog/internal/webhook"
	"github.com/teris-io/shortid"
)

// renewalWindow is how far ahead a next billing date counts as due soon.
const renewalWindow = 30 * 24 * time.Hour

type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) ([]*dto.SubscriptionResponse, error)
	ApproveSubscription(ctx context.Context, id string, req dto.ApproveSubscriptionRequest) (*dto.SubscriptionResponse, error)
	RejectSubscription(ctx context.Context, id string, req dto.RejectSubscriptionRequest) (*dto.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, id string, req dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error)
	ExpireDueSubscriptions(ctx context.Context) (expired int, renewed int, err error)
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{ServiceParams: params}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	price, err := s.PriceRepo.Get(ctx, req.PriceID)
	if err != nil {
		return nil, err
	}

	product, err := s.ProductRepo.Get(ctx, price.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ierr.NewError("product is not active").
			WithHint("Inactive products cannot be subscribed to").
			WithReportableDetails(map[string]any{"product_id": product.ID}).
			Mark(ierr.ErrInvalidOperation)
	}

	sub := req.ToSubscription(ctx, price.BillingCycle, time.Now().UTC())
	sub.SubscriptionNumber = generateSubscriptionNumber()

	if err := s.SubRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"subscription_number", sub.SubscriptionNumber,
		"price_id", sub.PriceID,
	)
	s.publishWebhook(ctx, webhook.EventSubscriptionCreated, sub)

	return &dto.SubscriptionResponse{
		Subscription: sub,
		Message:      fmt.Sprintf("Subscription %s submitted for approval", sub.SubscriptionNumber),
	}, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	if id == "" {
		return nil, ierr.NewError("subscription ID is required").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation)
	}

	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) ([]*dto.SubscriptionResponse, error) {
	if filter == nil {
		filter = types.NewSubscriptionFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	subs, err := s.SubRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = &dto.SubscriptionResponse{Subscription: sub}
	}
	return responses, nil
}

func (s *subscriptionService) ApproveSubscription(ctx context.Context, id string, req dto.ApproveSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := requireCapability(ctx, types.CapabilityApproveSubscriptions); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTransition(sub, types.SubscriptionStatusActive); err != nil {
		return nil, err
	}

	price, err := s.PriceRepo.Get(ctx, sub.PriceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	approver := types.GetUserID(ctx)
	nextBilling := price.BillingCycle.EndDate(sub.StartDate)

	sub.Status = types.SubscriptionStatusActive
	sub.ApprovedBy = &approver
	sub.ApprovedAt = &now
	sub.NextBillingDate = &nextBilling
	if req.Notes != "" {
		sub.ApprovalNotes = &req.Notes
	}
	sub.UpdatedBy = approver

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("approved subscription",
		"subscription_id", sub.ID,
		"approved_by", approver,
	)
	s.publishWebhook(ctx, webhook.EventSubscriptionApproved, sub)

	return &dto.SubscriptionResponse{
		Subscription: sub,
		Message:      fmt.Sprintf("Subscription %s approved", sub.SubscriptionNumber),
	}, nil
}

func (s *subscriptionService) RejectSubscription(ctx context.Context, id string, req dto.RejectSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := requireCapability(ctx, types.CapabilityRejectSubscriptions); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTransition(sub, types.SubscriptionStatusRejected); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub.Status = types.SubscriptionStatusRejected
	sub.RejectedAt = &now
	sub.ApprovalNotes = &req.Notes
	sub.UpdatedBy = types.GetUserID(ctx)

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("rejected subscription", "subscription_id", sub.ID)
	s.publishWebhook(ctx, webhook.EventSubscriptionRejected, sub)

	return &dto.SubscriptionResponse{
		Subscription: sub,
		Message:      fmt.Sprintf("Subscription %s rejected", sub.SubscriptionNumber),
	}, nil
}

func (s *subscriptionService) CancelSubscription(ctx context.Context, id string, req dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := requireCapability(ctx, types.CapabilityCancelSubscriptions); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTransition(sub, types.SubscriptionStatusCancelled); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub.Status = types.SubscriptionStatusCancelled
	sub.CancelledAt = &now
	sub.CancellationNotes = &req.Notes
	sub.NextBillingDate = nil
	sub.UpdatedBy = types.GetUserID(ctx)

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("cancelled subscription", "subscription_id", sub.ID)
	s.publishWebhook(ctx, webhook.EventSubscriptionCancelled, sub)

	return &dto.SubscriptionResponse{
		Subscription: sub,
		Message:      fmt.Sprintf("Subscription %s cancelled", sub.SubscriptionNumber),
	}, nil
}

// ExpireDueSubscriptions sweeps active subscriptions past their end date. Auto
// renewing subscriptions roll forward one billing cycle; the rest expire. It
// runs as the system actor and needs no capability.
func (s *subscriptionService) ExpireDueSubscriptions(ctx context.Context) (int, int, error) {
	now := time.Now().UTC()
	due, err := s.SubRepo.ListActivePastEndDate(ctx, now)
	if err != nil {
		return 0, 0, err
	}

	expired, renewed := 0, 0
	for _, sub := range due {
		if sub.AutoRenew {
			if s.renewSubscription(ctx, sub) {
				renewed++
			}
			continue
		}
		if !sub.Status.CanTransitionTo(types.SubscriptionStatusExpired) {
			continue
		}
		sub.Status = types.SubscriptionStatusExpired
		sub.NextBillingDate = nil
		sub.UpdatedBy = types.DefaultUserID

		if err := s.SubRepo.Update(ctx, sub); err != nil {
			s.Logger.Errorw("failed to expire subscription",
				"subscription_id", sub.ID,
				"error", err,
			)
			continue
		}
		expired++
		s.publishWebhook(ctx, webhook.EventSubscriptionExpired, sub)
	}

	if expired > 0 || renewed > 0 {
		s.Logger.Infow("swept due subscriptions", "expired", expired, "renewed", renewed)
	}
	return expired, renewed, nil
}

// renewSubscription advances an auto-renewing subscription by one billing
// cycle from its current end date. A subscription whose price is gone is left
// untouched for the next sweep.
func (s *subscriptionService) renewSubscription(ctx context.Context, sub *subscription.Subscription) bool {
	price, err := s.PriceRepo.Get(ctx, sub.PriceID)
	if err != nil {
		s.Logger.Errorw("cannot renew subscription without its price",
			"subscription_id", sub.ID,
			"price_id", sub.PriceID,
			"error", err,
		)
		return false
	}

	newEnd := price.BillingCycle.EndDate(sub.EndDate)
	sub.EndDate = newEnd
	sub.NextBillingDate = &newEnd
	sub.UpdatedBy = types.DefaultUserID

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		s.Logger.Errorw("failed to renew subscription",
			"subscription_id", sub.ID,
			"error", err,
		)
		return false
	}
	s.publishWebhook(ctx, webhook.EventSubscriptionRenewed, sub)
	return true
}

// checkTransition rejects moves the status machine does not allow. Terminal
// states produce a dedicated message since no transition out of them exists.
func (s *subscriptionService) checkTransition(sub *subscription.Subscription, target types.SubscriptionStatus) error {
	if sub.Status.IsTerminal() {
		return ierr.NewErrorf("subscription is %s", sub.Status).
			WithHint("This subscription is in a terminal state").
			WithReportableDetails(map[string]any{
				"subscription_id": sub.ID,
				"status":          sub.Status,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	if !sub.Status.CanTransitionTo(target) {
		return ierr.NewErrorf("cannot move subscription from %s to %s", sub.Status, target).
			WithHint("The subscription is not in a state that allows this action").
			WithReportableDetails(map[string]any{
				"subscription_id": sub.ID,
				"from":            sub.Status,
				"to":              target,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}

// generateSubscriptionNumber creates a short human-readable reference.
func generateSubscriptionNumber() string {
	return fmt.Sprintf("SUB-%s", shortid.MustGenerate())
}
