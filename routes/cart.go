package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/cart"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/middleware"
)

// SetupCartRoutes registers the "/api/carts/*" endpoints. All are scoped to
// the authenticated caller's email.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	carts := api.Group("/carts")
	carts.Use(middleware.RequireUser)
	{
		carts.GET("/getcart", cartControllers.GetCartHandler(db))
		carts.POST("/addtocart", cartControllers.AddToCartHandler(db))
		carts.POST("/removefromcart", cartControllers.RemoveFromCartHandler(db))
		carts.DELETE("/clearcart", cartControllers.ClearCartHandler(db))
	}
}
