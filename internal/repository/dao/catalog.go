package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category already exists")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrProductNotFound    = errors.New("product not found")
)

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Supplier struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Email   string
	Phone   string
	Address string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Product struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	CategoryID uint     `gorm:"not null"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE"`

	SupplierID *uint
	Supplier   *Supplier `gorm:"constraint:OnDelete:SET NULL"`

	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity int             `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) InsertCategory(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_categories_name"`) {
			return Category{}, ErrCategoryNameExists
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CatalogDAO) FindCategoryByID(ctx context.Context, id uint) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CatalogDAO) FindAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("name").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CatalogDAO) UpdateCategory(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).
		Model(&Category{ID: category.ID}).
		Select("name", "description").
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
		})
	if result.Error != nil {
		return Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Category{}, ErrCategoryNotFound
	}

	return d.FindCategoryByID(ctx, category.ID)
}

func (d *CatalogDAO) DeleteCategory(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (d *CatalogDAO) InsertSupplier(ctx context.Context, supplier Supplier) (Supplier, error) {
	result := d.db.WithContext(ctx).Create(&supplier)
	if result.Error != nil {
		return Supplier{}, result.Error
	}

	return supplier, nil
}

func (d *CatalogDAO) FindSupplierByID(ctx context.Context, id uint) (Supplier, error) {
	var supplier Supplier

	result := d.db.WithContext(ctx).First(&supplier, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Supplier{}, ErrSupplierNotFound
		}

		return Supplier{}, result.Error
	}

	return supplier, nil
}

func (d *CatalogDAO) FindAllSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier

	result := d.db.WithContext(ctx).Order("name").Find(&suppliers)
	if result.Error != nil {
		return nil, result.Error
	}

	return suppliers, nil
}

func (d *CatalogDAO) UpdateSupplier(ctx context.Context, supplier Supplier) (Supplier, error) {
	result := d.db.WithContext(ctx).
		Model(&Supplier{ID: supplier.ID}).
		Select("name", "email", "phone", "address").
		Updates(map[string]interface{}{
			"name":    supplier.Name,
			"email":   supplier.Email,
			"phone":   supplier.Phone,
			"address": supplier.Address,
		})
	if result.Error != nil {
		return Supplier{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Supplier{}, ErrSupplierNotFound
	}

	return d.FindSupplierByID(ctx, supplier.ID)
}

func (d *CatalogDAO) DeleteSupplier(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Supplier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

func (d *CatalogDAO) InsertProduct(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return d.FindProductByID(ctx, product.ID)
}

func (d *CatalogDAO) FindProductByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

// FindAllProducts lists products, optionally filtered by a case-insensitive
// name substring.
func (d *CatalogDAO) FindAllProducts(ctx context.Context, nameQuery string) ([]Product, error) {
	var products []Product

	tx := d.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Order("id")
	if nameQuery != "" {
		tx = tx.Where("name ILIKE ?", "%"+nameQuery+"%")
	}

	result := tx.Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

// UpdateProduct never touches the quantity column. Quantity is owned by
// the stock adjustment operation.
func (d *CatalogDAO) UpdateProduct(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).
		Model(&Product{ID: product.ID}).
		Select("name", "category_id", "supplier_id", "price").
		Updates(map[string]interface{}{
			"name":        product.Name,
			"category_id": product.CategoryID,
			"supplier_id": product.SupplierID,
			"price":       product.Price,
		})
	if result.Error != nil {
		return Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindProductByID(ctx, product.ID)
}

func (d *CatalogDAO) DeleteProduct(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (d *CatalogDAO) FindLowStockProducts(ctx context.Context, threshold int) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Where("quantity < ?", threshold).
		Order("quantity").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *CatalogDAO) CountProducts(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Product{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *CatalogDAO) CountCategories(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Category{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *CatalogDAO) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Supplier{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
