package service

import (
	"context"

	"github.com/netserve/catalog/internal/api/dto"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
)

type PriceService interface {
	CreatePrice(ctx context.Context, req dto.CreatePriceRequest) (*dto.PriceResponse, error)
	GetPrice(ctx context.Context, id string) (*dto.PriceResponse, error)
	ListPricesByProduct(ctx context.Context, productID string) (*dto.ListPricesResponse, error)
	UpdatePrice(ctx context.Context, id string, req dto.UpdatePriceRequest) (*dto.PriceResponse, error)
	DeletePrice(ctx context.Context, id string) error
}

type priceService struct {
	ServiceParams
}

func NewPriceService(params ServiceParams) PriceService {
	return &priceService{ServiceParams: params}
}

func (s *priceService) CreatePrice(ctx context.Context, req dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	if err := requireCapability(ctx, types.CapabilityManagePrices); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ProductRepo.Get(ctx, req.ProductID); err != nil {
		return nil, err
	}

	// One price per product and billing cycle.
	if existing, err := s.PriceRepo.GetByProductAndCycle(ctx, req.ProductID, req.BillingCycle); err == nil && existing != nil {
		return nil, ierr.NewError("price already exists for billing cycle").
			WithHint("A product can carry only one price per billing cycle").
			WithReportableDetails(map[string]any{
				"product_id":    req.ProductID,
				"billing_cycle": req.BillingCycle,
			}).
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	p := req.ToPrice(ctx)
	if err := s.PriceRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, p.ProductID, p.ID)
}

func (s *priceService) GetPrice(ctx context.Context, id string) (*dto.PriceResponse, error) {
	if id == "" {
		return nil, ierr.NewError("price ID is required").
			WithHint("Price ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.PriceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, p.ProductID, p.ID)
}

func (s *priceService) ListPricesByProduct(ctx context.Context, productID string) (*dto.ListPricesResponse, error) {
	if _, err := s.ProductRepo.Get(ctx, productID); err != nil {
		return nil, err
	}

	prices, err := s.PriceRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	items := buildPriceResponses(prices)
	return &dto.ListPricesResponse{Items: items, Total: len(items)}, nil
}

func (s *priceService) UpdatePrice(ctx context.Context, id string, req dto.UpdatePriceRequest) (*dto.PriceResponse, error) {
	if err := requireCapability(ctx, types.CapabilityManagePrices); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PriceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A cycle change must not collide with the product's other prices.
	if req.BillingCycle != p.BillingCycle {
		if existing, err := s.PriceRepo.GetByProductAndCycle(ctx, p.ProductID, req.BillingCycle); err == nil && existing != nil && existing.ID != p.ID {
			return nil, ierr.NewError("price already exists for billing cycle").
				WithHint("A product can carry only one price per billing cycle").
				WithReportableDetails(map[string]any{
					"product_id":    p.ProductID,
					"billing_cycle": req.BillingCycle,
				}).
				Mark(ierr.ErrAlreadyExists)
		} else if err != nil && !ierr.IsNotFound(err) {
			return nil, err
		}
	}

	p.Amount = req.Amount
	p.BillingCycle = req.BillingCycle
	p.UpdatedBy = types.GetUserID(ctx)
	if err := s.PriceRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, p.ProductID, p.ID)
}

func (s *priceService) DeletePrice(ctx context.Context, id string) error {
	if err := requireCapability(ctx, types.CapabilityManagePrices); err != nil {
		return err
	}

	p, err := s.PriceRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.SubRepo.CountByPriceIDs(ctx, []string{p.ID})
	if err != nil {
		return err
	}
	if count > 0 {
		return ierr.NewError("price has subscriptions").
			WithHint("Prices referenced by subscriptions cannot be deleted").
			WithReportableDetails(map[string]any{
				"price_id":           p.ID,
				"subscription_count": count,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.PriceRepo.Delete(ctx, id)
}

// toResponse rebuilds the response against the product's full price set so
// the savings figure reflects the current monthly baseline.
func (s *priceService) toResponse(ctx context.Context, productID, priceID string) (*dto.PriceResponse, error) {
	prices, err := s.PriceRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	for _, resp := range buildPriceResponses(prices) {
		if resp.Price.ID == priceID {
			return resp, nil
		}
	}

	// The price was just read or written; fall back to a baseline-free view.
	p, err := s.PriceRepo.Get(ctx, priceID)
	if err != nil {
		return nil, err
	}
	return dto.NewPriceResponse(p, decimal.Zero), nil
}
