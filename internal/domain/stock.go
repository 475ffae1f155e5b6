package domain

import "time"

type ChangeType string

const (
	StockIn  ChangeType = "IN"
	StockOut ChangeType = "OUT"
)

func (t ChangeType) IsValid() bool {
	return t == StockIn || t == StockOut
}

// StockEntry is one row of the append-only stock ledger. Entries are
// created by the adjustment operation and never updated or deleted.
type StockEntry struct {
	ID               uint       `json:"id"`
	ProductID        uint       `json:"product_id"`
	Product          Product    `json:"product"`
	ChangeType       ChangeType `json:"change_type"`
	QuantityChanged  int        `json:"quantity_changed"`
	PreviousQuantity int        `json:"previous_quantity"`
	NewQuantity      int        `json:"new_quantity"`
	UpdatedByID      *uint      `json:"updated_by_id,omitempty"`
	UpdatedBy        *User      `json:"updated_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
