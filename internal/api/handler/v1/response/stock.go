package response

import (
	"time"

	"github.com/stocktrail/inventory-api/internal/domain"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// StockEntryResponse renders a ledger entry with the product and the
// acting user as display strings rather than ids.
type StockEntryResponse struct {
	ID               uint      `json:"id"`
	Product          string    `json:"product"`
	ChangeType       string    `json:"change_type"`
	QuantityChanged  int       `json:"quantity_changed"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	UpdatedBy        string    `json:"updated_by,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func NewStockEntryResponse(entry domain.StockEntry) StockEntryResponse {
	resp := StockEntryResponse{
		ID:               entry.ID,
		Product:          entry.Product.Name,
		ChangeType:       string(entry.ChangeType),
		QuantityChanged:  entry.QuantityChanged,
		PreviousQuantity: entry.PreviousQuantity,
		NewQuantity:      entry.NewQuantity,
		Timestamp:        entry.CreatedAt,
	}

	if entry.UpdatedBy != nil {
		resp.UpdatedBy = entry.UpdatedBy.DisplayName()
	}

	return resp
}

func NewStockHistoryResponse(entries []domain.StockEntry) []StockEntryResponse {
	history := make([]StockEntryResponse, len(entries))
	for i, entry := range entries {
		history[i] = NewStockEntryResponse(entry)
	}

	return history
}
