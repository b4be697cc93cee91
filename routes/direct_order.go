package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	directOrderControllers "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/directorder"
)

// SetupDirectOrderRoutes registers the buy-now endpoints. The storefront
// calls these without an account, so there is no auth group.
func SetupDirectOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	directOrders := api.Group("/direct-orders")
	{
		directOrders.POST("/placeDirectOrder", directOrderControllers.PlaceDirectOrderHandler(db))
		directOrders.GET("/directOrders", directOrderControllers.GetDirectOrdersHandler(db))
		directOrders.DELETE("/cancelDirectOrder/:orderId", directOrderControllers.CancelDirectOrderHandler(db))
	}
}
