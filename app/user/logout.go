package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func UserLogout(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	if err := d.Sessions.Revoke(c.Request.Context(), c.GetString("sessionToken")); err != nil {
		zap.L().Error("Failed to revoke session", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	clearSessionCookies(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
