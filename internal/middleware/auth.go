package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/auth"
	"gigmarket_backend/internal/config"
	"gigmarket_backend/internal/logger"
	"gigmarket_backend/pkg/apperrors"
)

// AuthMiddleware проверяет Bearer токен и кладет идентичность актора в контекст.
// Websocket-клиенты могут передавать токен query-параметром, т.к. браузерный
// WebSocket API не умеет выставлять заголовки.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization token required"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString, config.GetConfig().JWT.Secret)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// GetUserID достает ID актора, положенный AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
