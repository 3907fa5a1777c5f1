package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jirajara/invoices_backend/config"
	"github.com/jirajara/invoices_backend/utils"
)

// SessionMiddleware resolves the opaque session token in the `token`
// header to a user id. Requests without a token pass through; the auth
// directive rejects them later if they touch a protected field.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("token")
		if token == "" {
			c.Next()
			return
		}
		userId, exists, err := config.GetRedisValue("Token:" + token)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), utils.ContextKeyToken, token)
		ctx = context.WithValue(ctx, utils.ContextKeyUserId, userId)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
