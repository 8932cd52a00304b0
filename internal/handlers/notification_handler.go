package handlers

import (
	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/services"
)

type NotificationHandler struct {
	BaseHandler
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.PATCH("/read-all", h.MarkAllRead)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	notifications, err := h.service.ListForUser(c.Request.Context(), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.Param("id"), actorID); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"marked": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), actorID); err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gin.H{"marked": true})
}
