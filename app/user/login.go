package user

import (
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func UserLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data service.Credentials
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	// Registration stores the trimmed password, sign in has to match it
	data.Email = strings.TrimSpace(data.Email)
	data.Password = strings.TrimSpace(data.Password)

	if data.Email == "" || data.Password == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Email and password are required")
		return
	}

	u, err := d.Users.Authorize(c.Request.Context(), data)
	if err != nil {
		zap.L().Error("Failed to authorize user", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	if u == nil {
		response.Error(c, http.StatusUnauthorized, response.CodeInvalidCredentials, "Invalid email or password")
		return
	}

	token, _, err := d.Sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	SetSessionCookies(c, token, d.Sessions.TTL())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
	})
}
