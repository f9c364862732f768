package service

import (
	"testing"
	"time"

	"github.com/netserve/catalog/internal/api/dto"
	"github.com/netserve/catalog/internal/testutil"
	"github.com/netserve/catalog/internal/types"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CatalogService
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewCatalogService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		ProductRepo:  stores.ProductRepo,
		PriceRepo:    stores.PriceRepo,
		SubRepo:      stores.SubRepo,
		CategoryRepo: stores.CategoryRepo,
	})
}

func (s *CatalogServiceSuite) seedProducts() {
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.CategoryRepo.Create(ctx, testCategory("cat_res", "Residential")))
	s.NoError(stores.CategoryRepo.Create(ctx, testCategory("cat_biz", "Business")))

	fiber := testProduct("prod_fiber", "cat_res", "FIBER-100", true)
	fiber.Name = "Fiber Home"
	s.NoError(stores.ProductRepo.Create(ctx, fiber))

	wireless := testProduct("prod_wireless", "cat_biz", "AIR-50", true)
	wireless.Name = "Wireless Office"
	wireless.ConnectionType = types.ConnectionTypeWireless
	wireless.Bandwidth = 50
	s.NoError(stores.ProductRepo.Create(ctx, wireless))

	copper := testProduct("prod_copper", "cat_res", "DSL-10", true)
	copper.Name = "Copper Legacy"
	copper.ConnectionType = types.ConnectionTypeCopper
	copper.Bandwidth = 10
	s.NoError(stores.ProductRepo.Create(ctx, copper))
}

func (s *CatalogServiceSuite) TestProductCatalogSearch() {
	s.seedProducts()

	resp, err := s.service.ListProductCatalog(s.GetContext(), dto.ProductListingRequest{
		ListingParams: types.ListingParams{Search: "fiber"},
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Fiber Home", resp.Items[0].Name)
	s.Equal(1, resp.Pagination.TotalItems)
}

func (s *CatalogServiceSuite) TestProductCatalogFilterAndSort() {
	s.seedProducts()

	resp, err := s.service.ListProductCatalog(s.GetContext(), dto.ProductListingRequest{
		ListingParams: types.ListingParams{
			Filters:       map[string]string{"category_id": "cat_res"},
			SortField:     "bandwidth",
			SortDirection: types.SortDirectionDesc,
		},
	})
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal("Fiber Home", resp.Items[0].Name)
	s.Equal("Copper Legacy", resp.Items[1].Name)
}

func (s *CatalogServiceSuite) TestProductCatalogResolvesCategoryNames() {
	s.seedProducts()

	resp, err := s.service.ListProductCatalog(s.GetContext(), dto.ProductListingRequest{
		ListingParams: types.ListingParams{SortField: "name"},
	})
	s.NoError(err)
	for _, item := range resp.Items {
		s.NotNil(item.Category)
		s.NotEqual("-", item.CategoryName())
	}
}

func (s *CatalogServiceSuite) TestProductCatalogPagination() {
	s.seedProducts()

	page1, err := s.service.ListProductCatalog(s.GetContext(), dto.ProductListingRequest{
		ListingParams: types.ListingParams{SortField: "name", Page: 1, PageSize: 2},
	})
	s.NoError(err)
	s.Len(page1.Items, 2)
	s.Equal(2, page1.Pagination.TotalPages)
	s.Equal(3, page1.Pagination.TotalItems)

	page2, err := s.service.ListProductCatalog(s.GetContext(), dto.ProductListingRequest{
		ListingParams: types.ListingParams{SortField: "name", Page: 2, PageSize: 2},
	})
	s.NoError(err)
	s.Len(page2.Items, 1)

	page3, err := s.service.ListProductCatalog(s.GetContext(), dto.ProductListingRequest{
		ListingParams: types.ListingParams{SortField: "name", Page: 3, PageSize: 2},
	})
	s.NoError(err)
	s.Empty(page3.Items)
}

func (s *CatalogServiceSuite) TestSubscriptionCatalogFlattensReferences() {
	s.seedProducts()
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_1", "prod_fiber", 120000, types.BILLING_CYCLE_MONTHLY)))
	future := time.Now().UTC().AddDate(0, 1, 0)
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_1", "price_1", types.SubscriptionStatusActive, future)))

	resp, err := s.service.ListSubscriptionCatalog(ctx, dto.SubscriptionListingRequest{})
	s.NoError(err)
	s.Require().Len(resp.Items, 1)

	row := resp.Items[0]
	s.Equal("Fiber Home", row.ProductName)
	s.Equal("Residential", row.CategoryName)
	s.True(row.Amount.Equal(row.MonthlyRate))
}

func (s *CatalogServiceSuite) TestSubscriptionCatalogDegradesMissingReferences() {
	ctx := s.GetContext()
	stores := s.GetStores()

	// The subscription points at a price that no longer exists.
	future := time.Now().UTC().AddDate(0, 1, 0)
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_orphan", "price_gone", types.SubscriptionStatusActive, future)))

	resp, err := s.service.ListSubscriptionCatalog(ctx, dto.SubscriptionListingRequest{})
	s.NoError(err)
	s.Require().Len(resp.Items, 1)

	row := resp.Items[0]
	s.Equal("Unknown", row.ProductName)
	s.Equal("-", row.CategoryName)
	s.True(row.Amount.IsZero())
	s.True(row.MonthlyRate.IsZero())
}

func (s *CatalogServiceSuite) TestSubscriptionCatalogStatusFilter() {
	s.seedProducts()
	ctx := s.GetContext()
	stores := s.GetStores()

	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_1", "prod_fiber", 120000, types.BILLING_CYCLE_MONTHLY)))
	future := time.Now().UTC().AddDate(0, 1, 0)
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_active", "price_1", types.SubscriptionStatusActive, future)))
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_pending", "price_1", types.SubscriptionStatusPendingApproval, future)))

	resp, err := s.service.ListSubscriptionCatalog(ctx, dto.SubscriptionListingRequest{
		ListingParams: types.ListingParams{
			Filters: map[string]string{"status": "active"},
		},
	})
	s.NoError(err)
	s.Require().Len(resp.Items, 1)
	s.Equal("sub_active", resp.Items[0].ID)
}
