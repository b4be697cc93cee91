package middleware

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

// ValidateAPIKey gates the admin surface behind the X-API-KEY header.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		web.AbortError(c, web.KindUnauthenticated, "Invalid or missing API key")
		return
	}
	c.Next()
}
