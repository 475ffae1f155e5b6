package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/repository"
)

var (
	ErrCategoryNotFound   = repository.ErrCategoryNotFound
	ErrCategoryNameExists = repository.ErrCategoryNameExists
	ErrSupplierNotFound   = repository.ErrSupplierNotFound
	ErrProductNotFound    = repository.ErrProductNotFound
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.Category, error)
	FindAllCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	FindSupplierByID(ctx context.Context, id uint) (domain.Supplier, error)
	FindAllSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	FindProductByID(ctx context.Context, id uint) (domain.Product, error)
	FindAllProducts(ctx context.Context, nameQuery string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	FindLowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (domain.Category, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllCategories -> %w", err)
	}

	return categories, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *CatalogService) CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	created, err := s.repo.CreateSupplier(ctx, supplier)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("s.repo.CreateSupplier -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetSupplier(ctx context.Context, id uint) (domain.Supplier, error) {
	supplier, err := s.repo.FindSupplierByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("s.repo.FindSupplierByID -> %w", err)
	}

	return supplier, nil
}

func (s *CatalogService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.repo.FindAllSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllSuppliers -> %w", err)
	}

	return suppliers, nil
}

func (s *CatalogService) UpdateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	updated, err := s.repo.UpdateSupplier(ctx, supplier)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("s.repo.UpdateSupplier -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteSupplier(ctx context.Context, id uint) error {
	return s.repo.DeleteSupplier(ctx, id)
}

// CreateProduct verifies the referenced category and supplier exist before
// inserting, so a bad reference surfaces as a not-found error instead of a
// foreign key violation.
func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if _, err := s.repo.FindCategoryByID(ctx, product.CategoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.Product{}, ErrCategoryNotFound
		}

		return domain.Product{}, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	if product.SupplierID != nil {
		if _, err := s.repo.FindSupplierByID(ctx, *product.SupplierID); err != nil {
			if errors.Is(err, ErrSupplierNotFound) {
				return domain.Product{}, ErrSupplierNotFound
			}

			return domain.Product{}, fmt.Errorf("s.repo.FindSupplierByID -> %w", err)
		}
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.CreateProduct -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindProductByID -> %w", err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, nameQuery string) ([]domain.Product, error) {
	products, err := s.repo.FindAllProducts(ctx, nameQuery)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllProducts -> %w", err)
	}

	return products, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if _, err := s.repo.FindCategoryByID(ctx, product.CategoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.Product{}, ErrCategoryNotFound
		}

		return domain.Product{}, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	if product.SupplierID != nil {
		if _, err := s.repo.FindSupplierByID(ctx, *product.SupplierID); err != nil {
			if errors.Is(err, ErrSupplierNotFound) {
				return domain.Product{}, ErrSupplierNotFound
			}

			return domain.Product{}, fmt.Errorf("s.repo.FindSupplierByID -> %w", err)
		}
	}

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.UpdateProduct -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.DeleteProduct(ctx, id)
}
