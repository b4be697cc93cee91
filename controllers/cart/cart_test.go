package cartControllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.CartItem{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hash",
	}).Error)
}

func lineItem(itemID, size, fabric string) AddItemInput {
	return AddItemInput{
		ItemID:           itemID,
		SelectedSize:     size,
		SelectedFabric:   fabric,
		SelectedQuantity: 1,
		SelectedPrice:    500,
		Product:          "P1 Kurta",
	}
}

func TestAddItemIdempotent(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "a@x.com")

	first, err := AddItem(db, "a@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)
	assert.Len(t, first, 1)

	// Same key tuple again: silent no-op, not an increment.
	second, err := AddItem(db, "a@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, second[0].Quantity)

	// A different size is a different line.
	third, err := AddItem(db, "a@x.com", lineItem("P1", "L", "cotton"))
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestAddItemNoAccount(t *testing.T) {
	db := openTestDB(t)

	_, err := AddItem(db, "ghost@x.com", lineItem("P1", "M", "cotton"))
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestRemoveItem(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "a@x.com")

	_, err := AddItem(db, "a@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)
	_, err = AddItem(db, "a@x.com", lineItem("P2", "M", "linen"))
	require.NoError(t, err)

	items, err := RemoveItem(db, "a@x.com", RemoveItemInput{
		ItemID: "P1", SelectedSize: "M", SelectedFabric: "cotton",
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "P2", items[0].ItemID)
}

func TestRemoveItemMissingIsNoOp(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "a@x.com")

	_, err := AddItem(db, "a@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)

	items, err := RemoveItem(db, "a@x.com", RemoveItemInput{
		ItemID: "P9", SelectedSize: "S", SelectedFabric: "silk",
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGetCart(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "a@x.com")

	// Empty cart is not an error, it is an empty list.
	items, err := GetCart(db, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = GetCart(db, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestClearCart(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "a@x.com")

	_, err := AddItem(db, "a@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)
	_, err = AddItem(db, "a@x.com", lineItem("P2", "L", "linen"))
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, "a@x.com"))
	items, err := GetCart(db, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an already-empty cart stays a success.
	require.NoError(t, ClearCart(db, "a@x.com"))
}

func TestCartsAreScopedPerAccount(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "a@x.com")
	seedUser(t, db, "b@x.com")

	_, err := AddItem(db, "a@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)
	_, err = AddItem(db, "b@x.com", lineItem("P1", "M", "cotton"))
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, "a@x.com"))

	items, err := GetCart(db, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
