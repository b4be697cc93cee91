package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/awais-ur-rehman/Farhat-Rena-backend/controllers/user"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/middleware"
)

// SetupUserRoutes registers the "/api/users/*" account endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.POST("/register", userControllers.Register(db))
		users.POST("/login", userControllers.Login(db))
		users.POST("/getuser", userControllers.GetUser(db))
		users.POST("/removeuser", userControllers.RemoveUser(db))
		users.POST("/forgotpassword", userControllers.ForgotPassword(db))
		users.POST("/verifyotp", userControllers.VerifyOTP(db))
		users.PUT("/resetpassword/:email", userControllers.ResetPassword(db))

		users.GET("/allusers", middleware.ValidateAPIKey, userControllers.GetAllUsers(db))
	}
}
