package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/handlers"
	"gigmarket_backend/internal/middleware"
	"gigmarket_backend/ws"
)

// SetupRoutes вешает все маршруты API.
// Публичные: health, листинг и карточка гига. Остальное - за AuthMiddleware.
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers, wsManager *ws.WebSocketManager) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	public := api.Group("")
	private := api.Group("")
	private.Use(middleware.AuthMiddleware())

	h.Gig.RegisterRoutes(public, private)
	h.Bid.RegisterRoutes(private)
	h.Notification.RegisterRoutes(private)
	h.User.RegisterRoutes(private)

	private.GET("/ws", ws.ServeWS(wsManager))
}
