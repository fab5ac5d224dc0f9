package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func UserVerify(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "No verification token provided")
		return
	}

	_, err := d.Verification.Consume(c.Request.Context(), token)
	switch {
	case errors.Is(err, service.ErrTokenInvalid):
		response.Error(c, http.StatusNotFound, response.CodeTokenInvalid, "Token invalid or already used")
		return
	case errors.Is(err, service.ErrTokenExpired):
		response.Error(c, http.StatusBadRequest, response.CodeTokenExpired, "Token expired")
		return
	case err != nil:
		zap.L().Error("Failed to consume verification token", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified successfully",
	})
}
