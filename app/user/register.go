package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/pkg/middleware"
	"bitwise74/chores-api/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserRegister runs behind the validation middleware, the payload it reads
// from the context is already trimmed and complete
func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")
	in := c.MustGet(middleware.RegistrationKey).(middleware.RegistrationInput)

	u, err := d.Users.CreateUser(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		var authErr *service.AuthError
		if !errors.As(err, &authErr) {
			zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
			response.ServerError(c)
			return
		}

		if authErr.Code == service.CodeServerError {
			zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		} else {
			zap.L().Debug("Registration rejected", zap.Error(err), zap.String("requestID", requestID))
		}

		code := string(authErr.Code)
		response.Error(c, response.StatusFor(code), code, authErr.Message)
		return
	}

	// The user can ask for another mail, don't fail a registration that
	// already went through
	if err := d.Verification.Send(c.Request.Context(), u.Email); err != nil {
		zap.L().Error("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    u,
	})
}
