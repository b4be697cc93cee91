package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/notify"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mailer notify.Mailer) {
	api := r.Group("/api")

	SetupUserRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db, mailer)
	SetupDirectOrderRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupAdminRoutes(api, db)
}
