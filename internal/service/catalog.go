package service

import (
	"context"

	"github.com/netserve/catalog/internal/api/dto"
	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/domain/product"
	"github.com/netserve/catalog/internal/domain/subscription"
	"github.com/netserve/catalog/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Placeholders shown when a listing row's reference chain does not resolve.
const (
	placeholderMissing = "-"
	placeholderUnknown = "Unknown"
)

// CatalogService serves the interactive listings: the full entity snapshot is
// loaded, then searched, filtered, sorted, and paginated in memory so every
// view parameter combination behaves identically.
type CatalogService interface {
	ListProductCatalog(ctx context.Context, req dto.ProductListingRequest) (*dto.ListProductsResponse, error)
	ListSubscriptionCatalog(ctx context.Context, req dto.SubscriptionListingRequest) (*dto.ListSubscriptionsResponse, error)
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) ListProductCatalog(ctx context.Context, req dto.ProductListingRequest) (*dto.ListProductsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	params := req.ListingParams.Normalize()

	products, err := s.ProductRepo.List(ctx, types.NewNoLimitProductFilter())
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryByID := lo.KeyBy(categories, func(c *category.Category) string { return c.ID })

	rows := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		rows[i] = &dto.ProductResponse{
			Product:  p,
			Category: categoryByID[p.CategoryID],
		}
	}

	filtered := ApplyListing(rows, params, productListingFields())
	page := Paginate(filtered, params.Page, params.PageSize)

	return &dto.ListProductsResponse{
		Items:      page,
		Pagination: types.NewPaginationResponse(params.Page, params.PageSize, len(filtered)),
	}, nil
}

func (s *catalogService) ListSubscriptionCatalog(ctx context.Context, req dto.SubscriptionListingRequest) (*dto.ListSubscriptionsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	params := req.ListingParams.Normalize()

	subs, err := s.SubRepo.List(ctx, types.NewNoLimitSubscriptionFilter())
	if err != nil {
		return nil, err
	}

	rows, err := s.buildSubscriptionRows(ctx, subs)
	if err != nil {
		return nil, err
	}

	filtered := ApplyListing(rows, params, subscriptionListingFields())
	page := Paginate(filtered, params.Page, params.PageSize)

	return &dto.ListSubscriptionsResponse{
		Items:      page,
		Pagination: types.NewPaginationResponse(params.Page, params.PageSize, len(filtered)),
	}, nil
}

// buildSubscriptionRows flattens subscriptions against their price, product,
// and category references. A broken reference never fails the listing; the
// row degrades to placeholder values instead.
func (s *catalogService) buildSubscriptionRows(ctx context.Context, subs []*subscription.Subscription) ([]*dto.SubscriptionListItem, error) {
	prices, err := s.PriceRepo.List(ctx)
	if err != nil {
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

	priceByID := lo.KeyBy(prices, func(p *price.Price) string { return p.ID })
	productByID := lo.KeyBy(products, func(p *product.Product) string { return p.ID })
	categoryByID := lo.KeyBy(categories, func(c *category.Category) string { return c.ID })

	rows := make([]*dto.SubscriptionListItem, len(subs))
	for i, sub := range subs {
		row := &dto.SubscriptionListItem{
			Subscription: sub,
			ProductName:  placeholderUnknown,
			CategoryName: placeholderMissing,
			Amount:       decimal.Zero,
			MonthlyRate:  decimal.Zero,
		}

		if pr, ok := priceByID[sub.PriceID]; ok {
			row.Amount = pr.Amount
			row.BillingCycle = pr.BillingCycle
			row.MonthlyRate = pr.MonthlyRate()

			if prod, ok := productByID[pr.ProductID]; ok {
				row.ProductName = prod.Name
				if cat, ok := categoryByID[prod.CategoryID]; ok {
					row.CategoryName = cat.Name
				}
			}
		}

		rows[i] = row
	}
	return rows, nil
}

func productListingFields() ListingFields[*dto.ProductResponse] {
	return ListingFields[*dto.ProductResponse]{
		SearchText: func(r *dto.ProductResponse) []string {
			return []string{r.Name, r.Code, r.Description}
		},
		FilterValue: func(r *dto.ProductResponse, field string) string {
			switch field {
			case "category_id":
				return r.Product.CategoryID
			case "connection_type":
				return string(r.ConnectionType)
			case "bandwidth_unit":
				return string(r.BandwidthUnit)
			case "is_active":
				return boolFilterValue(r.IsActive)
			case "is_featured":
				return boolFilterValue(r.IsFeatured)
			}
			return ""
		},
		SortKey: func(r *dto.ProductResponse, field string) SortKey {
			switch field {
			case "name":
				return StringKey(r.Name)
			case "code":
				return StringKey(r.Code)
			case "bandwidth":
				return NumericKey(float64(r.Bandwidth))
			case "uptime_guarantee":
				return NumericKey(r.UptimeGuarantee)
			case "setup_fee":
				return NumericKey(r.SetupFee.InexactFloat64())
			case "created_at":
				return TimeKey(&r.Product.CreatedAt)
			}
			return StringKey(r.Name)
		},
	}
}

func subscriptionListingFields() ListingFields[*dto.SubscriptionListItem] {
	return ListingFields[*dto.SubscriptionListItem]{
		SearchText: func(r *dto.SubscriptionListItem) []string {
			return []string{r.SubscriptionNumber, r.UserID, r.ProductName}
		},
		FilterValue: func(r *dto.SubscriptionListItem, field string) string {
			switch field {
			case "status":
				return string(r.Status)
			case "billing_cycle":
				return string(r.BillingCycle)
			case "user_id":
				return r.UserID
			case "product_name":
				return r.ProductName
			case "category_name":
				return r.CategoryName
			}
			return ""
		},
		SortKey: func(r *dto.SubscriptionListItem, field string) SortKey {
			switch field {
			case "subscription_number":
				return StringKey(r.SubscriptionNumber)
			case "product_name":
				return StringKey(r.ProductName)
			case "status":
				return StringKey(string(r.Status))
			case "amount":
				return NumericKey(r.Amount.InexactFloat64())
			case "monthly_rate":
				return NumericKey(r.MonthlyRate.InexactFloat64())
			case "start_date":
				return TimeKey(&r.StartDate)
			case "end_date":
				return TimeKey(&r.EndDate)
			case "next_billing_date":
				return TimeKey(r.NextBillingDate)
			case "created_at":
				return TimeKey(&r.Subscription.CreatedAt)
			}
			return StringKey(r.SubscriptionNumber)
		},
	}
}

func boolFilterValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
