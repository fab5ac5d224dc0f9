package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/pkg/response"
	"bitwise74/chores-api/pkg/validators"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resendBody struct {
	Email string `json:"email"`
}

// UserVerifyResend answers the same way whether or not the email belongs to
// an unverified user
func UserVerifyResend(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data resendBody
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	email := strings.TrimSpace(data.Email)
	if err := validators.EmailValidator(email); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid email format")
		return
	}

	err := d.Verification.Resend(c.Request.Context(), email)
	if errors.Is(err, service.ErrResendCooldown) {
		response.Error(c, http.StatusTooManyRequests, response.CodeRateLimited, "Please wait before requesting another verification mail")
		return
	}
	if err != nil {
		zap.L().Error("Failed to resend verification mail", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the account exists and isn't verified a new mail is on its way",
	})
}
