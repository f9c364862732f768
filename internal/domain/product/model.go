package product

import (
	"github.com/netserve/catalog/internal/types"
	"github.com/shopspring/decimal"
)

// Product is a sellable connectivity offering.
type Product struct {
	ID             string               `db:"id" json:"id"`
	Name           string               `db:"name" json:"name"`
	Code           string               `db:"code" json:"code"`
	Description    string               `db:"description" json:"description"`
	CategoryID     string               `db:"category_id" json:"category_id"`
	Bandwidth      int                  `db:"bandwidth" json:"bandwidth"`
	BandwidthUnit  types.BandwidthUnit  `db:"bandwidth_unit" json:"bandwidth_unit"`
	ConnectionType types.ConnectionType `db:"connection_type" json:"connection_type"`
	// MinContractMonths is the minimum contract length in months.
	MinContractMonths int             `db:"min_contract_months" json:"min_contract_months"`
	UptimeGuarantee   float64         `db:"uptime_guarantee" json:"uptime_guarantee"`
	IsRecurring       bool            `db:"is_recurring" json:"is_recurring"`
	IsActive          bool            `db:"is_active" json:"is_active"`
	IsFeatured        bool            `db:"is_featured" json:"is_featured"`
	SetupFee          decimal.Decimal `db:"setup_fee" json:"setup_fee"`
	types.BaseModel
}
