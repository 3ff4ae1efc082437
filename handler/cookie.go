package handler

import (
	"brainvault/config"
	"brainvault/middleware"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setTokenCookie 生产环境 Secure + SameSite=None，其余 Lax
func setTokenCookie(c *gin.Context, conf *config.Config, token string, expiresAt time.Time) {
	secure := conf.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", secure, true)
}

func clearTokenCookie(c *gin.Context, conf *config.Config) {
	secure := conf.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", secure, true)
}
