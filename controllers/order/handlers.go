package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/middleware"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/notify"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

func orderIDParam(c *gin.Context) (uint, bool) {
	idParam := c.Param("orderId")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil || id == 0 {
		web.Error(c, web.KindInvalidRequest, "orderId is required")
		return 0, false
	}
	return uint(id), true
}

// POST /api/orders/placeOrder
func PlaceOrderHandler(db *gorm.DB, mailer notify.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}
		if err := req.validate(); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		order, emailSent, err := PlaceOrder(db, mailer, req)
		if err != nil {
			if errors.Is(err, models.ErrInvalidOrderStatus) {
				web.Error(c, web.KindInvalidRequest, err.Error())
				return
			}
			web.Error(c, web.KindUpstreamFailure, "Error placing order")
			return
		}

		BroadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"success":   true,
			"message":   "Order placed successfully",
			"orderId":   order.ID,
			"orderRef":  order.OrderRef,
			"emailSent": emailSent,
		})
	}
}

// GET /api/orders/myorders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}

		orders, err := ListUserOrders(db, email)
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := make([]models.Order, 0)
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// DELETE /api/orders/cancelOrder/:orderId
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}

		if err := CancelOrder(db, email, orderID); err != nil {
			if errors.Is(err, ErrNotFoundOrForbidden) {
				web.Error(c, web.KindNotFoundOrForbidden, "Order not found")
				return
			}
			web.Error(c, web.KindUpstreamFailure, "Failed to cancel order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order canceled successfully"})
	}
}

func respondStatusUpdate(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
	case errors.Is(err, ErrNotFoundOrForbidden):
		web.Error(c, web.KindNotFoundOrForbidden, "Order not found")
	case errors.Is(err, ErrInvalidTransition):
		web.Error(c, web.KindInvalidTransition, "status transition not allowed")
	default:
		web.Error(c, web.KindUpstreamFailure, "Failed to update order status")
	}
}

// POST /api/orders/updateOrderStatus/:orderId (owner-scoped)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			web.Error(c, web.KindUnauthenticated, "Unauthorized")
			return
		}
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		respondStatusUpdate(c, UpdateStatus(db, orderID, newStatus, email))
	}
}

// POST /api/admin/orders/:orderId/status (no owner check)
func AdminUpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		respondStatusUpdate(c, UpdateStatus(db, orderID, newStatus, ""))
	}
}

// DELETE /api/admin/orders/:orderId
func AdminDeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}

		if err := DeleteOrder(db, orderID); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Error(c, web.KindNotFound, "Order not found")
				return
			}
			web.Error(c, web.KindUpstreamFailure, "Failed to delete order")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
	}
}

// POST /api/orders/verifyOrder
func VerifyOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.Error(c, web.KindInvalidRequest, err.Error())
			return
		}

		if err := VerifyPayment(db, req.OrderID, req.Success); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Error(c, web.KindNotFound, "Order not found")
				return
			}
			web.Error(c, web.KindUpstreamFailure, "Order not verified")
			return
		}

		if req.Success {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Paid"})
		} else {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Not Paid"})
		}
	}
}
