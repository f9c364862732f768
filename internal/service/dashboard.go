package service

import (
	"context"
	"time"

	"github.com/netserve/catalog/internal/api/dto"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{ServiceParams: params}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if err := requireCapability(ctx, types.CapabilityViewDashboard); err != nil {
		return nil, err
	}

	products, err := s.ProductRepo.List(ctx, types.NewNoLimitProductFilter())
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.SubRepo.List(ctx, types.NewNoLimitSubscriptionFilter())
	if err != nil {
		return nil, err
	}
	prices, err := s.PriceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	priceByID := lo.KeyBy(prices, func(p *price.Price) string { return p.ID })

	resp := &dto.DashboardResponse{
		TotalProducts:           len(products),
		TotalCategories:         len(categories),
		TotalSubscriptions:      len(subs),
		SubscriptionsByStatus:   make(map[string]int),
		MonthlyRecurringRevenue: decimal.Zero,
	}

	for _, p := range products {
		if p.IsActive {
			resp.ActiveProducts++
		}
		if p.IsFeatured {
			resp.FeaturedProducts++
		}
	}

	now := time.Now().UTC()
	activeSubs := 0
	for _, sub := range subs {
		resp.SubscriptionsByStatus[string(sub.Status)]++

		switch sub.Status {
		case types.SubscriptionStatusPendingApproval:
			resp.NeedsApproval++
		case types.SubscriptionStatusActive:
			activeSubs++
			// MRR counts each active subscription at its price's monthly
			// equivalent. A dangling price reference contributes nothing.
			if pr, ok := priceByID[sub.PriceID]; ok {
				resp.MonthlyRecurringRevenue = resp.MonthlyRecurringRevenue.Add(pr.MonthlyRate())
			}
		}

		if sub.IsRenewalDueWithin(now, renewalWindow) {
			resp.RenewalsDueSoon++
		}
	}

	resp.ActivePercent = percentOf(activeSubs, len(subs))

	return resp, nil
}

// percentOf returns part as a percentage of total, 0 when total is 0.
func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
