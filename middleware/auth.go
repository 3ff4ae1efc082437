package middleware

import (
	"brainvault/dao/cache"
	"brainvault/pkg/context"
	"brainvault/pkg/jwt"
	"brainvault/pkg/log"
	"brainvault/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookie 登录态 cookie 名
const TokenCookie = "token"

// Auth 校验 cookie 或 Authorization: Bearer 中的令牌，已登出的令牌拒绝
func Auth(secret []byte, sessions *cache.SessionStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		revoked, err := sessions.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.L.Warn("check token revocation", zap.String("jti", claims.ID), zap.Error(err))
		}
		if revoked {
			response.Abort(c, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxTokenID, claims.ID)
		c.Set(context.CtxTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
