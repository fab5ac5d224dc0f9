package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validate only runs once the JWT middleware accepted the session
func Validate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userID":  c.GetString("userID"),
	})
}
