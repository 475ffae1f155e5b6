package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stocktrail/inventory-api/internal/domain"
)

func TestDashboardService_GetSummary(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewDashboardService(repo)

	lowStock := []domain.Product{
		{ID: 1, Name: "Hammer", Quantity: 2},
		{ID: 4, Name: "Nails", Quantity: 9},
	}

	repo.On("CountProducts", mock.Anything).Return(int64(12), nil)
	repo.On("CountCategories", mock.Anything).Return(int64(3), nil)
	repo.On("CountSuppliers", mock.Anything).Return(int64(2), nil)
	repo.On("FindLowStockProducts", mock.Anything, domain.LowStockThreshold).Return(lowStock, nil)

	summary, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalProducts)
	assert.Equal(t, int64(3), summary.TotalCategories)
	assert.Equal(t, int64(2), summary.TotalSuppliers)
	assert.Equal(t, lowStock, summary.LowStockProducts)
}

func TestDashboardService_GetSummary_WrapsRepositoryError(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewDashboardService(repo)

	repoErr := errors.New("connection refused")
	repo.On("CountProducts", mock.Anything).Return(int64(0), repoErr)

	_, err := svc.GetSummary(context.Background())

	assert.ErrorIs(t, err, repoErr)
}
