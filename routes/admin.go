package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/admin"
	cartControllers "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/cart"
	orderControllers "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/order"
	productController "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/product"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/middleware"
)

// SetupAdminRoutes registers the "/api/admin/*" endpoints. Everything past
// the login/reset flows requires the API key.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	{
		// Dashboard sign-in and password recovery.
		admin.POST("/adminlogin", adminController.AdminLogin(db))
		admin.POST("/forgotpassword", adminController.ForgotPassword(db))
		admin.POST("/verifyotp", adminController.VerifyOTP(db))
		admin.PUT("/resetpassword/:email", adminController.ResetPassword(db))

		keyed := admin.Group("")
		keyed.Use(middleware.ValidateAPIKey)
		{
			keyed.POST("/addadmin", adminController.AddAdmin(db))

			keyed.GET("/orders", orderControllers.GetAllOrdersHandler(db))
			keyed.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
			keyed.POST("/orders/:orderId/status", orderControllers.AdminUpdateOrderStatusHandler(db))
			keyed.DELETE("/orders/:orderId", orderControllers.AdminDeleteOrderHandler(db))

			keyed.GET("/user-cart/:email", cartControllers.GetAdminUserCartHandler(db))

			products := keyed.Group("/products")
			{
				products.POST("", productController.CreateProduct(db))
				products.PUT("/:id", productController.UpdateProduct(db))
				products.DELETE("/:id", productController.DeleteProduct(db))
			}
		}
	}
}
