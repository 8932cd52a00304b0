package handlers

import (
	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/services"
)

// BidHandler - маршруты откликов вне контекста конкретного гига
type BidHandler struct {
	BaseHandler
	gigService *services.GigService
}

func NewBidHandler(gigService *services.GigService) *BidHandler {
	return &BidHandler{gigService: gigService}
}

func (h *BidHandler) RegisterRoutes(r *gin.RouterGroup) {
	bids := r.Group("/bids")
	{
		bids.GET("/my", h.ListMy)
	}
}

// ListMy - GET /bids/my, отклики фрилансера вместе с гигами
func (h *BidHandler) ListMy(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	bids, err := h.gigService.ListMyBids(c.Request.Context(), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, bids)
}
