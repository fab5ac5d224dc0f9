package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the signed in user. The password hash is never
// serialized.
func UserFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")
	userID := c.GetString("userID")

	u, err := d.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "User not found")
			return
		}

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"user":     u,
		"verified": u.Verified(),
	})
}
