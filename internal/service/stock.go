package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/repository"
)

var (
	ErrInsufficientStock = repository.ErrInsufficientStock
	ErrInvalidChangeType = repository.ErrInvalidChangeType
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
)

type StockRepository interface {
	Adjust(ctx context.Context, productID uint, changeType domain.ChangeType, quantity int, actorID *uint) (domain.Product, domain.StockEntry, error)
	FindAllEntries(ctx context.Context) ([]domain.StockEntry, error)
	FindEntriesByProductID(ctx context.Context, productID uint) ([]domain.StockEntry, error)
}

type StockService struct {
	repo StockRepository
}

func NewStockService(repo StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

// Adjust is the only code path that mutates a product's quantity. It
// validates the input before touching the store, so a rejected adjustment
// has no side effects.
func (s *StockService) Adjust(ctx context.Context, productID uint, changeType domain.ChangeType, quantity int, actor domain.User) (domain.Product, domain.StockEntry, error) {
	if quantity <= 0 {
		return domain.Product{}, domain.StockEntry{}, ErrInvalidQuantity
	}
	if !changeType.IsValid() {
		return domain.Product{}, domain.StockEntry{}, ErrInvalidChangeType
	}

	var actorID *uint
	if actor.ID != 0 {
		id := actor.ID
		actorID = &id
	}

	product, entry, err := s.repo.Adjust(ctx, productID, changeType, quantity, actorID)
	if err != nil {
		return domain.Product{}, domain.StockEntry{}, fmt.Errorf("s.repo.Adjust -> %w", err)
	}

	return product, entry, nil
}

// History returns the whole ledger, newest entry first.
func (s *StockService) History(ctx context.Context) ([]domain.StockEntry, error) {
	entries, err := s.repo.FindAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllEntries -> %w", err)
	}

	return entries, nil
}

func (s *StockService) ProductHistory(ctx context.Context, productID uint) ([]domain.StockEntry, error) {
	entries, err := s.repo.FindEntriesByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindEntriesByProductID -> %w", err)
	}

	return entries, nil
}
