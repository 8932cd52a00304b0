package handlers

import (
	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/services"
)

type UserHandler struct {
	BaseHandler
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/me", h.Me)
		users.GET("/me/dashboard", h.Dashboard)
	}
}

// Me - GET /users/me, профиль текущего пользователя
func (h *UserHandler) Me(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, user)
}

// Dashboard - GET /users/me/dashboard?filter=bids|hired|active|completed,
// счетчики кабинета плюс отфильтрованный список откликов
func (h *UserHandler) Dashboard(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	stats, err := h.service.DashboardStats(c.Request.Context(), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}

	bids, err := h.service.DashboardBids(c.Request.Context(), actorID, c.Query("filter"))
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, gin.H{"stats": stats, "bids": bids})
}
