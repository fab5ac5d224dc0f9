package middleware

import (
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/pkg/response"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AuthCookie = "auth_token"

// NewJWTMiddleware authenticates the auth_token cookie (or a Bearer token)
// against its server side session. Sets userID and sessionToken.
func NewJWTMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		tokenStr := bearer(c)
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(AuthCookie)
		}

		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Not signed in")
			return
		}

		sess, err := sessions.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrSessionInvalid) {
				response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "Session invalid or expired. Please log in again")
				return
			}

			zap.L().Error("Failed to authenticate session", zap.Error(err), zap.String("requestID", requestID))
			response.ServerError(c)
			return
		}

		c.Set("userID", sess.UserID)
		c.Set("sessionToken", sess.SessionToken)
		c.Next()
	}
}

func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")

	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}
