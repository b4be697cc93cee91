package directOrderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

var ErrNotFound = errors.New("direct order not found")

type BuyNowData struct {
	ItemID           string  `json:"itemId"`
	SelectedSize     string  `json:"selectedSize"`
	SelectedFabric   string  `json:"selectedFabric"`
	SelectedQuantity int     `json:"selectedQuantity"`
	SelectedPrice    float64 `json:"selectedPrice"`
	Product          string  `json:"product"`
}

type DeliveryForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type PaymentDetails struct {
	Method      string  `json:"method"`
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
}

type PlaceDirectOrderRequest struct {
	BuyNowData       *BuyNowData     `json:"buyNowData"`
	DeliveryFormData *DeliveryForm   `json:"deliveryFormData"`
	PaymentDetails   *PaymentDetails `json:"paymentDetails"`
	Status           string          `json:"status"`
}

func (req *PlaceDirectOrderRequest) validate() error {
	if req.BuyNowData == nil || req.BuyNowData.Product == "" {
		return errors.New("buyNowData is required")
	}
	if req.DeliveryFormData == nil {
		return errors.New("deliveryFormData is required")
	}
	if req.PaymentDetails == nil {
		return errors.New("paymentDetails is required")
	}
	return nil
}

// -------- Core Logic --------

// PlaceDirectOrder stores one buy-now record. There is no owning account and
// no status machine; status is stored as given, defaulting to "processing".
func PlaceDirectOrder(db *gorm.DB, req PlaceDirectOrderRequest) (*models.DirectOrder, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "processing"
	}

	order := models.DirectOrder{
		ProductName:     req.BuyNowData.Product,
		ItemID:          req.BuyNowData.ItemID,
		Size:            req.BuyNowData.SelectedSize,
		Fabric:          req.BuyNowData.SelectedFabric,
		Quantity:        req.BuyNowData.SelectedQuantity,
		Price:           req.BuyNowData.SelectedPrice,
		DeliveryName:    req.DeliveryFormData.Name,
		DeliveryPhone:   req.DeliveryFormData.Phone,
		DeliveryAddress: req.DeliveryFormData.Address,
		DeliveryCity:    req.DeliveryFormData.City,
		PaymentMethod:   req.PaymentDetails.Method,
		PaymentPhone:    req.PaymentDetails.PhoneNumber,
		PaymentAmount:   req.PaymentDetails.Amount,
		Status:          status,
		CreatedAt:       time.Now(),
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelDirectOrder deletes by id alone; there is no owner to check.
func CancelDirectOrder(db *gorm.DB, orderID uint) error {
	res := db.Where("id = ?", orderID).Delete(&models.DirectOrder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Handlers --------

// POST /api/direct-orders/placeDirectOrder
func PlaceDirectOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceDirectOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}
		if err := req.validate(); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		order, err := PlaceDirectOrder(db, req)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Error placing direct order")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Direct order placed successfully",
			"orderId": order.ID,
		})
	}
}

// GET /api/direct-orders/directOrders
func GetDirectOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := make([]models.DirectOrder, 0)
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Error fetching direct orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// DELETE /api/direct-orders/cancelDirectOrder/:orderId
func CancelDirectOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil || id == 0 {
			web.Error(c, web.KindInvalidRequest, "orderId is required")
			return
		}

		if err := CancelDirectOrder(db, uint(id)); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Error(c, web.KindNotFound, "Direct order not found")
				return
			}
			web.Error(c, web.KindUpstreamFailure, "Error canceling direct order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Direct order canceled successfully"})
	}
}
