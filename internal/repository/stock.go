package repository

import (
	"context"
	"fmt"

	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/repository/dao"
)

var (
	ErrInsufficientStock = dao.ErrInsufficientStock
	ErrInvalidChangeType = dao.ErrInvalidChangeType
)

type StockDAO interface {
	AdjustQuantity(ctx context.Context, productID uint, changeType string, quantity int, actorID *uint) (dao.Product, dao.StockEntry, error)
	FindAllEntries(ctx context.Context) ([]dao.StockEntry, error)
	FindEntriesByProductID(ctx context.Context, productID uint) ([]dao.StockEntry, error)
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

// Adjust delegates to the DAO, which applies the quantity change and the
// ledger insert in one transaction.
func (r *StockRepository) Adjust(ctx context.Context, productID uint, changeType domain.ChangeType, quantity int, actorID *uint) (domain.Product, domain.StockEntry, error) {
	product, entry, err := r.dao.AdjustQuantity(ctx, productID, string(changeType), quantity, actorID)
	if err != nil {
		return domain.Product{}, domain.StockEntry{}, fmt.Errorf("r.dao.AdjustQuantity -> %w", err)
	}

	return productDaoToDomain(product), entryDaoToDomain(entry), nil
}

func (r *StockRepository) FindAllEntries(ctx context.Context) ([]domain.StockEntry, error) {
	found, err := r.dao.FindAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllEntries -> %w", err)
	}

	return entriesDaoToDomain(found), nil
}

func (r *StockRepository) FindEntriesByProductID(ctx context.Context, productID uint) ([]domain.StockEntry, error) {
	found, err := r.dao.FindEntriesByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEntriesByProductID -> %w", err)
	}

	return entriesDaoToDomain(found), nil
}

func entryDaoToDomain(e dao.StockEntry) domain.StockEntry {
	entry := domain.StockEntry{
		ID:               e.ID,
		ProductID:        e.ProductID,
		Product:          productDaoToDomain(e.Product),
		ChangeType:       domain.ChangeType(e.ChangeType),
		QuantityChanged:  e.QuantityChanged,
		PreviousQuantity: e.PreviousQuantity,
		NewQuantity:      e.NewQuantity,
		UpdatedByID:      e.UpdatedByID,
		CreatedAt:        e.CreatedAt,
	}

	if e.UpdatedBy != nil {
		user := domain.User{
			ID:    e.UpdatedBy.ID,
			Email: e.UpdatedBy.Email,
			Name:  e.UpdatedBy.Name,
			Role:  e.UpdatedBy.Role,
		}
		entry.UpdatedBy = &user
	}

	return entry
}

func entriesDaoToDomain(found []dao.StockEntry) []domain.StockEntry {
	entries := make([]domain.StockEntry, len(found))
	for i, e := range found {
		entries[i] = entryDaoToDomain(e)
	}

	return entries
}
