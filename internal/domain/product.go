package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold marks products that need restocking.
const LowStockThreshold = 10

type Product struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	CategoryID uint            `json:"category_id"`
	Category   Category        `json:"category"`
	SupplierID *uint           `json:"supplier_id,omitempty"`
	Supplier   *Supplier       `json:"supplier,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (p Product) IsLowStock() bool {
	return p.Quantity < LowStockThreshold
}
