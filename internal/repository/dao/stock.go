package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInsufficientStock = errors.New("not enough stock")
	ErrInvalidChangeType = errors.New("invalid change type")
)

// StockEntry rows are append-only. The DAO exposes no update or delete
// for them.
type StockEntry struct {
	ID uint `gorm:"primaryKey"`

	ProductID uint    `gorm:"not null"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE"`

	ChangeType       string `gorm:"type:varchar(3);not null"` // "IN" or "OUT"
	QuantityChanged  int    `gorm:"not null"`
	PreviousQuantity int    `gorm:"not null"`
	NewQuantity      int    `gorm:"not null"`

	UpdatedByID *uint
	UpdatedBy   *User `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"not null"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

// AdjustQuantity applies one stock movement. The product row is locked
// for the duration of the transaction, so concurrent adjustments on the
// same product serialize, and the quantity update and the ledger insert
// commit or roll back together.
func (d *StockDAO) AdjustQuantity(ctx context.Context, productID uint, changeType string, quantity int, actorID *uint) (Product, StockEntry, error) {
	var (
		product Product
		entry   StockEntry
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, productID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}

			return result.Error
		}

		previous := product.Quantity
		switch changeType {
		case "IN":
			product.Quantity = previous + quantity
		case "OUT":
			if quantity > previous {
				return ErrInsufficientStock
			}
			product.Quantity = previous - quantity
		default:
			return ErrInvalidChangeType
		}

		if err := tx.Model(&Product{ID: product.ID}).Update("quantity", product.Quantity).Error; err != nil {
			return err
		}

		entry = StockEntry{
			ProductID:        product.ID,
			ChangeType:       changeType,
			QuantityChanged:  quantity,
			PreviousQuantity: previous,
			NewQuantity:      product.Quantity,
			UpdatedByID:      actorID,
		}

		return tx.Create(&entry).Error
	})
	if err != nil {
		return Product{}, StockEntry{}, err
	}

	return product, entry, nil
}

// FindAllEntries returns the full ledger, newest first.
func (d *StockDAO) FindAllEntries(ctx context.Context) ([]StockEntry, error) {
	var entries []StockEntry

	result := d.db.WithContext(ctx).
		Preload("Product").
		Preload("UpdatedBy").
		Order("created_at DESC, id DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *StockDAO) FindEntriesByProductID(ctx context.Context, productID uint) ([]StockEntry, error) {
	var entries []StockEntry

	result := d.db.WithContext(ctx).
		Preload("Product").
		Preload("UpdatedBy").
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
