package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productController "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productController.GetProducts(db))
		products.GET("/:id", productController.GetProductByID(db))
	}
}
