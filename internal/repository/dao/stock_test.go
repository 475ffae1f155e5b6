package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T) User {
	t.Helper()

	user, err := NewUserDAO(testDB).Insert(context.Background(), User{
		Email:    fmt.Sprintf("%v-%v@test.local", t.Name(), time.Now().UnixNano()),
		Password: "irrelevant",
		Name:     "Test User",
		Role:     "staff",
	})
	require.NoError(t, err)

	return user
}

func createTestProduct(t *testing.T, quantity int) Product {
	t.Helper()

	catalog := NewCatalogDAO(testDB)

	category, err := catalog.InsertCategory(context.Background(), Category{
		Name: fmt.Sprintf("%v-%v", t.Name(), time.Now().UnixNano()),
	})
	require.NoError(t, err)

	product, err := catalog.InsertProduct(context.Background(), Product{
		Name:       fmt.Sprintf("%v product", t.Name()),
		CategoryID: category.ID,
		Price:      decimal.NewFromFloat(9.99),
		Quantity:   quantity,
	})
	require.NoError(t, err)

	return product
}

func TestStockDAO_AdjustQuantity_In(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 5)

	updated, entry, err := d.AdjustQuantity(context.Background(), product.ID, "IN", 7, &user.ID)

	require.NoError(t, err)
	assert.Equal(t, 12, updated.Quantity)
	assert.Equal(t, "IN", entry.ChangeType)
	assert.Equal(t, 7, entry.QuantityChanged)
	assert.Equal(t, 5, entry.PreviousQuantity)
	assert.Equal(t, 12, entry.NewQuantity)
	require.NotNil(t, entry.UpdatedByID)
	assert.Equal(t, user.ID, *entry.UpdatedByID)

	persisted, err := NewCatalogDAO(testDB).FindProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, persisted.Quantity)
}

func TestStockDAO_AdjustQuantity_Out(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 5)

	updated, entry, err := d.AdjustQuantity(context.Background(), product.ID, "OUT", 3, &user.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, "OUT", entry.ChangeType)
	assert.Equal(t, 5, entry.PreviousQuantity)
	assert.Equal(t, 2, entry.NewQuantity)
}

func TestStockDAO_AdjustQuantity_OutInsufficient(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 5)

	_, _, err := d.AdjustQuantity(context.Background(), product.ID, "OUT", 6, &user.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The product is untouched and no ledger row was written.
	persisted, err := NewCatalogDAO(testDB).FindProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, persisted.Quantity)

	entries, err := d.FindEntriesByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStockDAO_AdjustQuantity_UnknownProduct(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)

	_, _, err := d.AdjustQuantity(context.Background(), 999999, "IN", 1, &user.ID)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStockDAO_AdjustQuantity_UnknownChangeType(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 5)

	_, _, err := d.AdjustQuantity(context.Background(), product.ID, "SIDEWAYS", 1, &user.ID)

	assert.ErrorIs(t, err, ErrInvalidChangeType)
}

func TestStockDAO_AdjustQuantity_Scenario(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 5)

	updated, entry, err := d.AdjustQuantity(context.Background(), product.ID, "OUT", 3, &user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, 5, entry.PreviousQuantity)
	assert.Equal(t, 2, entry.NewQuantity)

	_, _, err = d.AdjustQuantity(context.Background(), product.ID, "OUT", 10, &user.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	updated, entry, err = d.AdjustQuantity(context.Background(), product.ID, "IN", 20, &user.ID)
	require.NoError(t, err)
	assert.Equal(t, 22, updated.Quantity)
	assert.Equal(t, 2, entry.PreviousQuantity)
	assert.Equal(t, 22, entry.NewQuantity)

	// Exactly two ledger rows: the failed OUT left no trace.
	entries, err := d.FindEntriesByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "IN", entries[0].ChangeType)
	assert.Equal(t, "OUT", entries[1].ChangeType)
}

func TestStockDAO_FindEntries_NewestFirst(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 0)

	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)

	// Insert out of chronological order on purpose.
	for _, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		entry := StockEntry{
			ProductID:        product.ID,
			ChangeType:       "IN",
			QuantityChanged:  1,
			PreviousQuantity: 0,
			NewQuantity:      1,
			UpdatedByID:      &user.ID,
			CreatedAt:        base.Add(offset),
		}
		require.NoError(t, testDB.Create(&entry).Error)
	}

	entries, err := d.FindEntriesByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].CreatedAt.After(entries[i-1].CreatedAt),
			"entries must be ordered newest first")
	}
	assert.Equal(t, base.Add(2*time.Minute).UnixMilli(), entries[0].CreatedAt.UnixMilli())
}

func TestStockDAO_EntryKeepsActorNullAfterUserDelete(t *testing.T) {
	d := NewStockDAO(testDB)
	user := createTestUser(t)
	product := createTestProduct(t, 5)

	_, entry, err := d.AdjustQuantity(context.Background(), product.ID, "OUT", 1, &user.ID)
	require.NoError(t, err)

	require.NoError(t, testDB.Delete(&User{}, user.ID).Error)

	var persisted StockEntry
	require.NoError(t, testDB.First(&persisted, entry.ID).Error)
	assert.Nil(t, persisted.UpdatedByID)
	assert.Equal(t, 4, persisted.NewQuantity)
}

func TestCatalogDAO_FindLowStockProducts(t *testing.T) {
	catalog := NewCatalogDAO(testDB)

	low1 := createTestProduct(t, 0)
	low2 := createTestProduct(t, 9)
	high1 := createTestProduct(t, 10)
	high2 := createTestProduct(t, 250)

	products, err := catalog.FindLowStockProducts(context.Background(), 10)
	require.NoError(t, err)

	ids := make(map[uint]bool, len(products))
	for _, p := range products {
		assert.Less(t, p.Quantity, 10)
		ids[p.ID] = true
	}

	assert.True(t, ids[low1.ID])
	assert.True(t, ids[low2.ID])
	assert.False(t, ids[high1.ID])
	assert.False(t, ids[high2.ID])
}

func TestCatalogDAO_ProductNameFilter(t *testing.T) {
	catalog := NewCatalogDAO(testDB)

	category, err := catalog.InsertCategory(context.Background(), Category{
		Name: fmt.Sprintf("%v-%v", t.Name(), time.Now().UnixNano()),
	})
	require.NoError(t, err)

	for _, name := range []string{"Widget Alpha XQ", "widget beta xq", "Gadget XQ"} {
		_, err = catalog.InsertProduct(context.Background(), Product{
			Name:       name,
			CategoryID: category.ID,
			Price:      decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	products, err := catalog.FindAllProducts(context.Background(), "widget alpha")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget Alpha XQ", products[0].Name)

	// Case-insensitive substring match.
	products, err = catalog.FindAllProducts(context.Background(), "WIDGET")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	d := NewUserDAO(testDB)

	email := fmt.Sprintf("dup-%v@test.local", time.Now().UnixNano())

	_, err := d.Insert(context.Background(), User{Email: email, Password: "x", Name: "A", Role: "staff"})
	require.NoError(t, err)

	_, err = d.Insert(context.Background(), User{Email: email, Password: "x", Name: "B", Role: "staff"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}
