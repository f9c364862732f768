package testutil

import (
	"context"

	"github.com/netserve/catalog/internal/config"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores aggregates the in-memory repositories used by service tests
type Stores struct {
	ProductRepo  *InMemoryProductStore
	PriceRepo    *InMemoryPriceStore
	SubRepo      *InMemorySubscriptionStore
	CategoryRepo *InMemoryCategoryStore
}

// NewStores creates a fresh set of in-memory stores
func NewStores() Stores {
	return Stores{
		ProductRepo:  NewInMemoryProductStore(),
		PriceRepo:    NewInMemoryPriceStore(),
		SubRepo:      NewInMemorySubscriptionStore(),
		CategoryRepo: NewInMemoryCategoryStore(),
	}
}

// Clear resets every store
func (s Stores) Clear() {
	s.ProductRepo.Clear()
	s.PriceRepo.Clear()
	s.SubRepo.Clear()
	s.CategoryRepo.Clear()
}

// BaseServiceTestSuite provides common setup for service tests
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	stores Stores
}

// SetupTest initializes the test environment
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = types.WithUserID(context.Background(), "user_test")
	s.ctx = types.WithRequestID(s.ctx, types.GenerateRequestID())
	s.cfg = config.GetDefaultConfig()
	s.logger = logger.GetLogger()
	s.stores = NewStores()
}

// TearDownTest cleans up after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.Clear()
}

// GetContext returns the base test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetContextWithCapabilities returns the test context carrying the given
// capabilities
func (s *BaseServiceTestSuite) GetContextWithCapabilities(caps ...string) context.Context {
	return types.WithCapabilities(s.ctx, types.NewCapabilitySet(caps...))
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the in-memory stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}
