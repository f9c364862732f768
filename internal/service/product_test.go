package service

import (
	"testing"
	"time"

	"github.com/netserve/catalog/internal/api/dto"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/testutil"
	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewProductService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		ProductRepo:  stores.ProductRepo,
		PriceRepo:    stores.PriceRepo,
		SubRepo:      stores.SubRepo,
		CategoryRepo: stores.CategoryRepo,
	})
	s.NoError(stores.CategoryRepo.Create(s.GetContext(), testCategory("cat_1", "Residential")))
}

func (s *ProductServiceSuite) createRequest(code string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:              "Fiber 100",
		Code:              code,
		CategoryID:        "cat_1",
		Bandwidth:         100,
		BandwidthUnit:     types.BandwidthUnitMbps,
		ConnectionType:    types.ConnectionTypeFiber,
		MinContractMonths: 12,
		UptimeGuarantee:   99.9,
		IsRecurring:       true,
		IsActive:          true,
		SetupFee:          decimal.NewFromInt(5000),
	}
}

func (s *ProductServiceSuite) TestCreateProduct() {
	ctx := s.GetContextWithCapabilities("create_product")

	resp, err := s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("FIBER-100", resp.Code)
	s.Require().NotNil(resp.Category)
	s.Equal("Residential", resp.Category.Name)
}

func (s *ProductServiceSuite) TestCreateProductRequiresCapability() {
	_, err := s.service.CreateProduct(s.GetContext(), s.createRequest("FIBER-100"))
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *ProductServiceSuite) TestCreateProductDuplicateCode() {
	ctx := s.GetContextWithCapabilities("create_product")

	_, err := s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.Require().NoError(err)

	_, err = s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *ProductServiceSuite) TestCreateProductUnknownCategory() {
	ctx := s.GetContextWithCapabilities("create_product")
	req := s.createRequest("FIBER-100")
	req.CategoryID = "cat_missing"

	_, err := s.service.CreateProduct(ctx, req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProductServiceSuite) TestUpdateProduct() {
	ctx := s.GetContextWithCapabilities("create_product", "edit_product")
	created, err := s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.Require().NoError(err)

	update := dto.UpdateProductRequest{CreateProductRequest: s.createRequest("FIBER-200")}
	update.Bandwidth = 200

	resp, err := s.service.UpdateProduct(ctx, created.ID, update)
	s.NoError(err)
	s.Equal("FIBER-200", resp.Code)
	s.Equal(200, resp.Bandwidth)
}

func (s *ProductServiceSuite) TestDeleteProductBlockedBySubscriptions() {
	ctx := s.GetContextWithCapabilities("create_product", "delete_product")
	created, err := s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.Require().NoError(err)

	stores := s.GetStores()
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_1", created.ID, 100000, types.BILLING_CYCLE_MONTHLY)))
	future := time.Now().UTC().AddDate(0, 1, 0)
	s.NoError(stores.SubRepo.Create(ctx, testSubscription("sub_1", "price_1", types.SubscriptionStatusCancelled, future)))

	// Even terminal subscriptions keep the product alive.
	err = s.service.DeleteProduct(ctx, created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ProductServiceSuite) TestDeleteProduct() {
	ctx := s.GetContextWithCapabilities("create_product", "delete_product")
	created, err := s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.Require().NoError(err)

	s.NoError(s.service.DeleteProduct(ctx, created.ID))

	_, err = s.service.GetProduct(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProductServiceSuite) TestGetProductIncludesPrices() {
	ctx := s.GetContextWithCapabilities("create_product")
	created, err := s.service.CreateProduct(ctx, s.createRequest("FIBER-100"))
	s.Require().NoError(err)

	stores := s.GetStores()
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_m", created.ID, 120000, types.BILLING_CYCLE_MONTHLY)))
	s.NoError(stores.PriceRepo.Create(ctx, testPrice("price_a", created.ID, 1200000, types.BILLING_CYCLE_ANNUAL)))

	resp, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(resp.Prices, 2)

	// The annual price normalizes to 100000 per month and saves against the
	// 120000 monthly baseline.
	for _, pr := range resp.Prices {
		if pr.BillingCycle == types.BILLING_CYCLE_ANNUAL {
			s.True(decimal.NewFromInt(100000).Equal(pr.MonthlyEquivalent))
			s.False(pr.SavingsPercent.IsZero())
		}
	}
}
