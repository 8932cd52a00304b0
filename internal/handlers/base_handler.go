package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/middleware"
	"gigmarket_backend/pkg/apperrors"
)

// BaseHandler - общие хелперы для всех хендлеров
type BaseHandler struct{}

// actorID достает ID аутентифицированного пользователя.
// false означает, что хендлер стоит не за AuthMiddleware - это баг роутинга.
func (h *BaseHandler) actorID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization required"))
	}
	return id, ok
}

// bindJSON парсит тело запроса; ошибки формата - 400
func (h *BaseHandler) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body").WithError(err))
		return false
	}
	return true
}

func (h *BaseHandler) ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *BaseHandler) created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

func (h *BaseHandler) fail(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
