package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"gigmarket_backend/internal/logger"
	"gigmarket_backend/internal/middleware"
	"gigmarket_backend/pkg/apperrors"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin проверяет CORS middleware, сюда доходят уже свои
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS апгрейдит соединение и подвешивает его в хаб.
// Маршрут стоит за AuthMiddleware: токен принимается query-параметром.
func ServeWS(manager *WebSocketManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization token required"))
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade failed", "user_id", userID, "error", err)
			return
		}

		client := newClient(manager, conn, userID)
		manager.register <- client

		go client.writePump()
		go client.readPump()
	}
}
