// Package achievement serves the achievement catalogue
package achievement

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AchievementList(c *gin.Context, d *internal.Deps) {
	achievements, err := d.Store.ListAchievements(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list achievements", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"achievements": achievements,
	})
}
