// Package oauth receives identities from the sign-in broker that talks to
// the OAuth providers
package oauth

import (
	"bitwise74/chores-api/app/user"
	"bitwise74/chores-api/internal"
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/pkg/response"
	"bitwise74/chores-api/pkg/validators"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const SecretHeader = "X-OAuth-Secret"

// NewSecretMiddleware only lets requests carrying oauth.callback_secret through
func NewSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		want := viper.GetString("oauth.callback_secret")
		got := c.GetHeader(SecretHeader)

		if want == "" || subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Unauthorized")
			return
		}

		c.Next()
	}
}

// Callback signs in (or signs up) the user behind a provider identity and
// starts a session for them
func Callback(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var p service.OAuthProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	p.Email = strings.TrimSpace(p.Email)
	p.Name = strings.TrimSpace(p.Name)

	if p.Provider == "" || p.ProviderAccountID == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Missing provider identity")
		return
	}

	if !validators.IsEmail(p.Email) {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid email format")
		return
	}

	u, created, err := d.Users.SignInWithOAuth(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, service.ErrOAuthEmailExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "User already exists")
			return
		}

		zap.L().Error("Failed to sign in with oauth", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	token, _, err := d.Sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		response.ServerError(c)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	user.SetSessionCookies(c, token, d.Sessions.TTL())
	c.JSON(status, gin.H{
		"success": true,
		"user":    service.NewPublicUser(u),
		"token":   token,
	})
}
