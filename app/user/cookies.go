package user

import (
	"bitwise74/chores-api/pkg/middleware"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// SetSessionCookies hands the signed session token to the browser. The
// logged_in cookie is readable by the frontend, the token isn't.
func SetSessionCookies(c *gin.Context, token string, ttl time.Duration) {
	secure := viper.GetBool("host.ssl.enabled")
	maxAge := int(ttl.Seconds())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, token, maxAge, "/", "", secure, true)
	c.SetCookie("logged_in", "1", maxAge, "/", "", secure, false)
}

func clearSessionCookies(c *gin.Context) {
	secure := viper.GetBool("host.ssl.enabled")

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", secure, true)
	c.SetCookie("logged_in", "", -1, "/", "", secure, false)
}
