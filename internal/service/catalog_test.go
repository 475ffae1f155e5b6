package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stocktrail/inventory-api/internal/domain"
)

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	created, _ := args.Get(0).(domain.Category)
	return created, args.Error(1)
}

func (m *CatalogRepoMock) FindCategoryByID(ctx context.Context, id uint) (domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(domain.Category)
	return category, args.Error(1)
}

func (m *CatalogRepoMock) FindAllCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *CatalogRepoMock) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	updated, _ := args.Get(0).(domain.Category)
	return updated, args.Error(1)
}

func (m *CatalogRepoMock) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogRepoMock) CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	args := m.Called(ctx, supplier)
	created, _ := args.Get(0).(domain.Supplier)
	return created, args.Error(1)
}

func (m *CatalogRepoMock) FindSupplierByID(ctx context.Context, id uint) (domain.Supplier, error) {
	args := m.Called(ctx, id)
	supplier, _ := args.Get(0).(domain.Supplier)
	return supplier, args.Error(1)
}

func (m *CatalogRepoMock) FindAllSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	suppliers, _ := args.Get(0).([]domain.Supplier)
	return suppliers, args.Error(1)
}

func (m *CatalogRepoMock) UpdateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	args := m.Called(ctx, supplier)
	updated, _ := args.Get(0).(domain.Supplier)
	return updated, args.Error(1)
}

func (m *CatalogRepoMock) DeleteSupplier(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogRepoMock) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	created, _ := args.Get(0).(domain.Product)
	return created, args.Error(1)
}

func (m *CatalogRepoMock) FindProductByID(ctx context.Context, id uint) (domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(domain.Product)
	return product, args.Error(1)
}

func (m *CatalogRepoMock) FindAllProducts(ctx context.Context, nameQuery string) ([]domain.Product, error) {
	args := m.Called(ctx, nameQuery)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *CatalogRepoMock) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	updated, _ := args.Get(0).(domain.Product)
	return updated, args.Error(1)
}

func (m *CatalogRepoMock) DeleteProduct(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogRepoMock) FindLowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *CatalogRepoMock) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepoMock) CountCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepoMock) CountSuppliers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewCatalogService(repo)

	repo.On("FindCategoryByID", mock.Anything, uint(99)).Return(domain.Category{}, ErrCategoryNotFound)

	_, err := svc.CreateProduct(context.Background(), domain.Product{
		Name:       "Hammer",
		CategoryID: 99,
		Price:      decimal.NewFromInt(5),
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	repo.AssertNotCalled(t, "CreateProduct")
}

func TestCatalogService_CreateProduct_UnknownSupplier(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewCatalogService(repo)

	supplierID := uint(42)
	repo.On("FindCategoryByID", mock.Anything, uint(1)).Return(domain.Category{ID: 1}, nil)
	repo.On("FindSupplierByID", mock.Anything, supplierID).Return(domain.Supplier{}, ErrSupplierNotFound)

	_, err := svc.CreateProduct(context.Background(), domain.Product{
		Name:       "Hammer",
		CategoryID: 1,
		SupplierID: &supplierID,
		Price:      decimal.NewFromInt(5),
	})

	assert.ErrorIs(t, err, ErrSupplierNotFound)
	repo.AssertNotCalled(t, "CreateProduct")
}

func TestCatalogService_CreateProduct_NoSupplierIsFine(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewCatalogService(repo)

	product := domain.Product{Name: "Hammer", CategoryID: 1, Price: decimal.NewFromInt(5), Quantity: 3}

	repo.On("FindCategoryByID", mock.Anything, uint(1)).Return(domain.Category{ID: 1}, nil)
	repo.On("CreateProduct", mock.Anything, product).Return(product, nil)

	created, err := svc.CreateProduct(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t, product, created)
	repo.AssertNotCalled(t, "FindSupplierByID")
}

func TestCatalogService_UpdateProduct_ChecksReferences(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewCatalogService(repo)

	repo.On("FindCategoryByID", mock.Anything, uint(99)).Return(domain.Category{}, ErrCategoryNotFound)

	_, err := svc.UpdateProduct(context.Background(), domain.Product{
		ID:         3,
		Name:       "Hammer",
		CategoryID: 99,
		Price:      decimal.NewFromInt(5),
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	repo.AssertNotCalled(t, "UpdateProduct")
}

func TestCatalogService_CreateCategory_PropagatesDuplicateName(t *testing.T) {
	repo := new(CatalogRepoMock)
	svc := NewCatalogService(repo)

	repo.On("CreateCategory", mock.Anything, mock.Anything).Return(domain.Category{}, ErrCategoryNameExists)

	_, err := svc.CreateCategory(context.Background(), domain.Category{Name: "Tools"})

	assert.ErrorIs(t, err, ErrCategoryNameExists)
}
