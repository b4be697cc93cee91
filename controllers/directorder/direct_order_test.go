package directOrderControllers

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
	require.NoError(t, db.AutoMigrate(&models.DirectOrder{}))
	return db
}

func buyNowRequest() PlaceDirectOrderRequest {
	return PlaceDirectOrderRequest{
		BuyNowData: &BuyNowData{
			ItemID:           "P1",
			SelectedSize:     "M",
			SelectedFabric:   "cotton",
			SelectedQuantity: 1,
			SelectedPrice:    500,
			Product:          "P1 Kurta",
		},
		DeliveryFormData: &DeliveryForm{City: "X"},
		PaymentDetails:   &PaymentDetails{Method: "cod", Amount: 500},
	}
}

func TestPlaceDirectOrder(t *testing.T) {
	db := openTestDB(t)

	order, err := PlaceDirectOrder(db, buyNowRequest())
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, "processing", order.Status)

	// A supplied status is stored as-is; there is no transition machine here.
	req := buyNowRequest()
	req.Status = "on hold"
	order, err = PlaceDirectOrder(db, req)
	require.NoError(t, err)
	assert.Equal(t, "on hold", order.Status)
}

func TestPlaceDirectOrderValidation(t *testing.T) {
	db := openTestDB(t)

	req := buyNowRequest()
	req.BuyNowData = nil
	_, err := PlaceDirectOrder(db, req)
	require.Error(t, err)
	assert.Equal(t, "buyNowData is required", err.Error())

	req = buyNowRequest()
	req.DeliveryFormData = nil
	_, err = PlaceDirectOrder(db, req)
	require.Error(t, err)
	assert.Equal(t, "deliveryFormData is required", err.Error())
}

func TestCancelDirectOrder(t *testing.T) {
	db := openTestDB(t)

	order, err := PlaceDirectOrder(db, buyNowRequest())
	require.NoError(t, err)

	require.NoError(t, CancelDirectOrder(db, order.ID))
	assert.ErrorIs(t, CancelDirectOrder(db, order.ID), ErrNotFound)
}
