package api

import (
	"strings"

	"technitium_sync/internal/httpx"

	"github.com/gin-gonic/gin"
)

// TokenRequired is a middleware that validates the static bearer token
func TokenRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.FailErr(c, httpx.ErrUnauthorized("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.FailErr(c, httpx.ErrUnauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		if parts[1] != token {
			httpx.FailErr(c, httpx.ErrInvalidToken("invalid token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
