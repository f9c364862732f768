package service

import (
	"time"

	"github.com/netserve/catalog/internal/domain/category"
	"github.com/netserve/catalog/internal/domain/price"
	"github.com/netserve/catalog/internal/domain/product"
	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
)

func testCategory(id, name string) *category.Category {
	return &category.Category{
		ID:        id,
		Name:      name,
		BaseModel: testBaseModel(),
	}
}

func testProduct(id, categoryID, code string, active bool) *product.Product {
	return &product.Product{
		ID:                id,
		Name:              "Product " + code,
		Code:              code,
		CategoryID:        categoryID,
		Bandwidth:         100,
		BandwidthUnit:     types.BandwidthUnitMbps,
		ConnectionType:    types.ConnectionTypeFiber,
		MinContractMonths: 12,
		UptimeGuarantee:   99.9,
		IsRecurring:       true,
		IsActive:          active,
		SetupFee:          decimal.NewFromInt(5000),
		BaseModel:         testBaseModel(),
	}
}

func testPrice(id, productID string, amount int64, cycle types.BillingCycle) *price.Price {
	return &price.Price{
		ID:           id,
		ProductID:    productID,
		Amount:       decimal.NewFromInt(amount),
		BillingCycle: cycle,
		BaseModel:    testBaseModel(),
	}
}

func testBaseModel() types.BaseModel {
	now := time.Now().UTC()
	return types.BaseModel{
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: "user_test",
		UpdatedBy: "user_test",
	}
}
