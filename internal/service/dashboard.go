package service

import (
	"context"
	"fmt"

	"github.com/stocktrail/inventory-api/internal/domain"
)

type DashboardService struct {
	repo CatalogRepository
}

func NewDashboardService(repo CatalogRepository) *DashboardService {
	return &DashboardService{
		repo: repo,
	}
}

func (s *DashboardService) GetSummary(ctx context.Context) (domain.DashboardSummary, error) {
	totalProducts, err := s.repo.CountProducts(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("s.repo.CountProducts -> %w", err)
	}

	totalCategories, err := s.repo.CountCategories(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("s.repo.CountCategories -> %w", err)
	}

	totalSuppliers, err := s.repo.CountSuppliers(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("s.repo.CountSuppliers -> %w", err)
	}

	lowStock, err := s.repo.FindLowStockProducts(ctx, domain.LowStockThreshold)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("s.repo.FindLowStockProducts -> %w", err)
	}

	return domain.DashboardSummary{
		TotalProducts:    totalProducts,
		TotalCategories:  totalCategories,
		TotalSuppliers:   totalSuppliers,
		LowStockProducts: lowStock,
	}, nil
}
