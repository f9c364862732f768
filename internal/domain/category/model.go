package category

import (
	"github.com/netserve/catalog/internal/types"
)

// Category is a flat grouping label for products.
type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	types.BaseModel
}
