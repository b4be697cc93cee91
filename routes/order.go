package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/order"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/middleware"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/notify"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, mailer notify.Mailer) {
	orders := api.Group("/orders")
	{
		// Payment verification callback; confirm-or-delete, no auth header
		// on the redirect so it stays outside the user group.
		orders.POST("/verifyOrder", orderControllers.VerifyOrderHandler(db))

		// Live feed of placed orders for the dashboard. Browsers cannot set
		// custom headers on a websocket handshake, so this sits outside the
		// keyed admin group.
		orders.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

		authed := orders.Group("")
		authed.Use(middleware.RequireUser)
		{
			authed.POST("/placeOrder", orderControllers.PlaceOrderHandler(db, mailer))
			authed.GET("/myorders", orderControllers.GetMyOrdersHandler(db))
			authed.DELETE("/cancelOrder/:orderId", orderControllers.CancelOrderHandler(db))
			authed.POST("/updateOrderStatus/:orderId", orderControllers.UpdateOrderStatusHandler(db))
		}
	}
}
