package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ADMIN_API_KEY", "admin-key")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
		&models.DirectOrder{}, &models.Admin{}, &models.Product{},
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, db, nil)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Full checkout walk: register, login, fill the cart, place the order, see
// it in the order list, clear the cart.
func TestCheckoutFlow(t *testing.T) {
	r := setupTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/users/register", gin.H{
		"username": "A", "email": "a@x.com", "password": "pw123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	w = doJSON(r, http.MethodPost, "/api/users/login", gin.H{
		"email": "a@x.com", "password": "pw123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	authed := map[string]string{"auth-token": login.Token, "user-email": "a@x.com"}

	line := gin.H{
		"itemId": "P1", "selectedSize": "M", "selectedFabric": "cotton",
		"selectedQuantity": 1, "selectedPrice": 500, "product": "P1 Kurta",
	}
	w = doJSON(r, http.MethodPost, "/api/carts/addtocart", line, authed)
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		CartData []models.CartItem `json:"cartData"`
	}
	w = doJSON(r, http.MethodGet, "/api/carts/getcart", nil, authed)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.CartData, 1)

	w = doJSON(r, http.MethodPost, "/api/orders/placeOrder", gin.H{
		"cartData":         []gin.H{line},
		"deliveryFormData": gin.H{"city": "X"},
		"paymentDetails":   gin.H{"method": "jazzcash", "phoneNumber": "0300", "amount": 500},
		"accountInfo":      gin.H{"name": "A", "email": "a@x.com"},
	}, authed)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Success   bool `json:"success"`
		OrderID   uint `json:"orderId"`
		EmailSent bool `json:"emailSent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.True(t, placed.Success)
	assert.NotZero(t, placed.OrderID)
	assert.False(t, placed.EmailSent)

	var listed struct {
		Orders []models.Order `json:"orders"`
	}
	w = doJSON(r, http.MethodGet, "/api/orders/myorders", nil, authed)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Orders, 1)
	assert.Equal(t, models.OrderStatusProcessing, listed.Orders[0].Status)
	assert.False(t, listed.Orders[0].Payment)

	// Cart clearing is the caller's separate step after checkout.
	w = doJSON(r, http.MethodDelete, "/api/carts/clearcart", nil, authed)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/carts/getcart", nil, authed)
	require.Equal(t, http.StatusOK, w.Code)
	cart.CartData = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.CartData)
}

func TestAdminStatusUpdateFlow(t *testing.T) {
	r := setupTestServer(t)
	adminKey := map[string]string{"X-API-KEY": "admin-key"}

	w := doJSON(r, http.MethodPost, "/api/users/register", gin.H{
		"username": "A", "email": "a@x.com", "password": "pw123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	w = doJSON(r, http.MethodPost, "/api/users/login", gin.H{
		"email": "a@x.com", "password": "pw123",
	}, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	authed := map[string]string{"auth-token": login.Token, "user-email": "a@x.com"}

	w = doJSON(r, http.MethodPost, "/api/orders/placeOrder", gin.H{
		"cartData":         []gin.H{{"itemId": "P1", "selectedQuantity": 1, "selectedPrice": 500, "product": "P1"}},
		"deliveryFormData": gin.H{"city": "X"},
		"paymentDetails":   gin.H{"method": "cod", "amount": 500},
		"accountInfo":      gin.H{"name": "A", "email": "a@x.com"},
	}, authed)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		OrderID uint `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))

	// No API key, no admin write.
	path := fmt.Sprintf("/api/admin/orders/%d/status", placed.OrderID)
	w = doJSON(r, http.MethodPost, path, gin.H{"status": "shipped"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, path, gin.H{"status": "shipped"}, adminKey)
	assert.Equal(t, http.StatusOK, w.Code)

	// Regression attempts are rejected with a stable code.
	w = doJSON(r, http.MethodPost, path, gin.H{"status": "processing"}, adminKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var failed struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failed))
	assert.Equal(t, "invalid_transition", failed.Code)

	var listed struct {
		Orders []models.Order `json:"orders"`
	}
	w = doJSON(r, http.MethodGet, "/api/orders/myorders", nil, authed)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Orders, 1)
	assert.Equal(t, models.OrderStatusShipped, listed.Orders[0].Status)
}
