package repository

import (
	"context"
	"fmt"

	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound   = dao.ErrCategoryNotFound
	ErrCategoryNameExists = dao.ErrCategoryNameExists
	ErrSupplierNotFound   = dao.ErrSupplierNotFound
	ErrProductNotFound    = dao.ErrProductNotFound
)

type CatalogDAO interface {
	InsertCategory(ctx context.Context, category dao.Category) (dao.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (dao.Category, error)
	FindAllCategories(ctx context.Context) ([]dao.Category, error)
	UpdateCategory(ctx context.Context, category dao.Category) (dao.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	InsertSupplier(ctx context.Context, supplier dao.Supplier) (dao.Supplier, error)
	FindSupplierByID(ctx context.Context, id uint) (dao.Supplier, error)
	FindAllSuppliers(ctx context.Context) ([]dao.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier dao.Supplier) (dao.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint) error
	InsertProduct(ctx context.Context, product dao.Product) (dao.Product, error)
	FindProductByID(ctx context.Context, id uint) (dao.Product, error)
	FindAllProducts(ctx context.Context, nameQuery string) ([]dao.Product, error)
	UpdateProduct(ctx context.Context, product dao.Product) (dao.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	FindLowStockProducts(ctx context.Context, threshold int) ([]dao.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountSuppliers(ctx context.Context) (int64, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.InsertCategory(ctx, dao.Category{
		Name:        category.Name,
		Description: category.Description,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return categoryDaoToDomain(created), nil
}

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.dao.FindCategoryByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindCategoryByID -> %w", err)
	}

	return categoryDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllCategories(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllCategories -> %w", err)
	}

	categories := make([]domain.Category, len(found))
	for i, c := range found {
		categories[i] = categoryDaoToDomain(c)
	}

	return categories, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	updated, err := r.dao.UpdateCategory(ctx, dao.Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.UpdateCategory -> %w", err)
	}

	return categoryDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCategory -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	created, err := r.dao.InsertSupplier(ctx, dao.Supplier{
		Name:    supplier.Name,
		Email:   supplier.Email,
		Phone:   supplier.Phone,
		Address: supplier.Address,
	})
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.InsertSupplier -> %w", err)
	}

	return supplierDaoToDomain(created), nil
}

func (r *CatalogRepository) FindSupplierByID(ctx context.Context, id uint) (domain.Supplier, error) {
	found, err := r.dao.FindSupplierByID(ctx, id)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.FindSupplierByID -> %w", err)
	}

	return supplierDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	found, err := r.dao.FindAllSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllSuppliers -> %w", err)
	}

	suppliers := make([]domain.Supplier, len(found))
	for i, s := range found {
		suppliers[i] = supplierDaoToDomain(s)
	}

	return suppliers, nil
}

func (r *CatalogRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error) {
	updated, err := r.dao.UpdateSupplier(ctx, dao.Supplier{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Email:   supplier.Email,
		Phone:   supplier.Phone,
		Address: supplier.Address,
	})
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("r.dao.UpdateSupplier -> %w", err)
	}

	return supplierDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteSupplier(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSupplier(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSupplier -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.InsertProduct(ctx, dao.Product{
		Name:       product.Name,
		CategoryID: product.CategoryID,
		SupplierID: product.SupplierID,
		Price:      product.Price,
		Quantity:   product.Quantity,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.InsertProduct -> %w", err)
	}

	return productDaoToDomain(created), nil
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.dao.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindProductByID -> %w", err)
	}

	return productDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllProducts(ctx context.Context, nameQuery string) ([]domain.Product, error) {
	found, err := r.dao.FindAllProducts(ctx, nameQuery)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllProducts -> %w", err)
	}

	return productsDaoToDomain(found), nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.UpdateProduct(ctx, dao.Product{
		ID:         product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
		SupplierID: product.SupplierID,
		Price:      product.Price,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.UpdateProduct -> %w", err)
	}

	return productDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.dao.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteProduct -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) FindLowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error) {
	found, err := r.dao.FindLowStockProducts(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindLowStockProducts -> %w", err)
	}

	return productsDaoToDomain(found), nil
}

func (r *CatalogRepository) CountProducts(ctx context.Context) (int64, error) {
	count, err := r.dao.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountProducts -> %w", err)
	}

	return count, nil
}

func (r *CatalogRepository) CountCategories(ctx context.Context) (int64, error) {
	count, err := r.dao.CountCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountCategories -> %w", err)
	}

	return count, nil
}

func (r *CatalogRepository) CountSuppliers(ctx context.Context) (int64, error) {
	count, err := r.dao.CountSuppliers(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountSuppliers -> %w", err)
	}

	return count, nil
}

func categoryDaoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func supplierDaoToDomain(s dao.Supplier) domain.Supplier {
	return domain.Supplier{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func productDaoToDomain(p dao.Product) domain.Product {
	product := domain.Product{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Category:   categoryDaoToDomain(p.Category),
		SupplierID: p.SupplierID,
		Price:      p.Price,
		Quantity:   p.Quantity,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	if p.Supplier != nil {
		supplier := supplierDaoToDomain(*p.Supplier)
		product.Supplier = &supplier
	}

	return product
}

func productsDaoToDomain(found []dao.Product) []domain.Product {
	products := make([]domain.Product, len(found))
	for i, p := range found {
		products[i] = productDaoToDomain(p)
	}

	return products
}
