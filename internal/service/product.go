package service

import (
	"context"

	"github.com/netserve/catalog/internal/api/dto"
	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := requireCapability(ctx, types.CapabilityCreateProduct); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Category must exist before a product can reference it.
	cat, err := s.CategoryRepo.Get(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.ProductRepo.GetByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, ierr.NewError("product code already in use").
			WithHint("Product codes must be unique").
			WithReportableDetails(map[string]any{
				"code":                req.Code,
				"existing_product_id": existing.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	p := req.ToProduct(ctx)
	if err := s.ProductRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created product", "product_id", p.ID, "code", p.Code)

	return &dto.ProductResponse{Product: p, Category: cat}, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, ierr.NewError("product ID is required").
			WithHint("Product ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductResponse{Product: p}

	// The category and prices are enrichment; a missing category degrades to
	// a nil reference rather than failing the lookup.
	if cat, err := s.CategoryRepo.Get(ctx, p.CategoryID); err == nil {
		resp.Category = cat
	}

	prices, err := s.PriceRepo.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp.Prices = buildPriceResponses(prices)

	return resp, nil
}

func (s *productService) ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error) {
	if filter == nil {
		filter = types.NewProductFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	products, err := s.ProductRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ProductRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryByID := lo.KeyBy(categories, func(c *category.Category) string { return c.ID })

	items := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		items[i] = &dto.ProductResponse{
			Product:  p,
			Category: categoryByID[p.CategoryID],
		}
	}

	page := filter.GetOffset()/max(filter.GetLimit(), 1) + 1
	return &dto.ListProductsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(page, filter.GetLimit(), total),
	}, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := requireCapability(ctx, types.CapabilityEditProduct); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cat, err := s.CategoryRepo.Get(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	// A code change must not collide with another product.
	if req.Code != p.Code {
		if existing, err := s.ProductRepo.GetByCode(ctx, req.Code); err == nil && existing != nil && existing.ID != p.ID {
			return nil, ierr.NewError("product code already in use").
				WithHint("Product codes must be unique").
				WithReportableDetails(map[string]any{"code": req.Code}).
				Mark(ierr.ErrAlreadyExists)
		} else if err != nil && !ierr.IsNotFound(err) {
			return nil, err
		}
	}

	p.Name = req.Name
	p.Code = req.Code
	p.Description = req.Description
	p.CategoryID = req.CategoryID
	p.Bandwidth = req.Bandwidth
	p.BandwidthUnit = req.BandwidthUnit
	p.ConnectionType = req.ConnectionType
	p.MinContractMonths = req.MinContractMonths
	p.UptimeGuarantee = req.UptimeGuarantee
	p.IsRecurring = req.IsRecurring
	p.IsActive = req.IsActive
	p.IsFeatured = req.IsFeatured
	p.SetupFee = req.SetupFee
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return &dto.ProductResponse{Product: p, Category: cat}, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := requireCapability(ctx, types.CapabilityDeleteProduct); err != nil {
		return err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	prices, err := s.PriceRepo.ListByProduct(ctx, p.ID)
	if err != nil {
		return err
	}

	// A product stays while any subscription, in any status, references one
	// of its prices.
	if len(prices) > 0 {
		priceIDs := lo.Map(prices, func(pr *price.Price, _ int) string { return pr.ID })
		count, err := s.SubRepo.CountByPriceIDs(ctx, priceIDs)
		if err != nil {
			return err
		}
		if count > 0 {
			return ierr.NewError("product has subscriptions").
				WithHint("Products with subscriptions cannot be deleted").
				WithReportableDetails(map[string]any{
					"product_id":         p.ID,
					"subscription_count": count,
				}).
				Mark(ierr.ErrInvalidOperation)
		}
	}

	// Repository delete removes the product and its prices atomically.
	if err := s.ProductRepo.Delete(ctx, p.ID); err != nil {
		return err
	}

	s.Logger.Infow("deleted product", "product_id", p.ID, "code", p.Code)
	return nil
}

// buildPriceResponses derives monthly figures for a product's price set using
// the product's own monthly price as the savings baseline.
func buildPriceResponses(prices []*price.Price) []*dto.PriceResponse {
	monthlyBaseline := decimal.Zero
	for _, pr := range prices {
		if pr.BillingCycle == types.BILLING_CYCLE_MONTHLY {
			monthlyBaseline = pr.Amount
			break
		}
	}

	responses := make([]*dto.PriceResponse, len(prices))
	for i, pr := range prices {
		responses[i] = dto.NewPriceResponse(pr, monthlyBaseline)
	}
	return responses
}
