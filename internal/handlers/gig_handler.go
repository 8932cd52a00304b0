package handlers

import (
	"github.com/gin-gonic/gin"

	"gigmarket_backend/internal/services"
	"gigmarket_backend/internal/services/dto"
	"gigmarket_backend/pkg/apperrors"
)

type GigHandler struct {
	BaseHandler
	gigService    *services.GigService
	hiringService *services.HiringService
}

func NewGigHandler(gigService *services.GigService, hiringService *services.HiringService) *GigHandler {
	return &GigHandler{gigService: gigService, hiringService: hiringService}
}

// RegisterRoutes: листинг и карточка гига публичные, остальное требует актора
func (h *GigHandler) RegisterRoutes(public, private *gin.RouterGroup) {
	public.GET("/gigs", h.List)
	public.GET("/gigs/:id", h.GetByID)

	gigs := private.Group("/gigs")
	{
		gigs.POST("", h.Create)
		gigs.GET("/my", h.ListMy)
		gigs.GET("/:id/bids", h.ListBids)
		gigs.POST("/:id/bids", h.CreateBid)
		gigs.POST("/:id/hire/:bidId", h.Hire)
		gigs.POST("/:id/complete/:bidId", h.Complete)
	}
}

// List - GET /gigs?search=&status=&minBudget=&maxBudget=&sort=
func (h *GigHandler) List(c *gin.Context) {
	var query dto.GigListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.fail(c, apperrors.NewBadRequestError("Invalid query parameters").WithError(err))
		return
	}

	gigs, err := h.gigService.List(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gigs)
}

func (h *GigHandler) Create(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.bindJSON(c, &req) {
		return
	}

	gig, err := h.gigService.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, gig)
}

func (h *GigHandler) ListMy(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	gigs, err := h.gigService.ListByOwner(c.Request.Context(), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gigs)
}

func (h *GigHandler) GetByID(c *gin.Context) {
	gig, err := h.gigService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, gig)
}

func (h *GigHandler) ListBids(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	bids, err := h.gigService.ListBids(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, bids)
}

func (h *GigHandler) CreateBid(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	var req dto.CreateBidRequest
	if !h.bindJSON(c, &req) {
		return
	}

	bid, err := h.hiringService.CreateBid(c.Request.Context(), c.Param("id"), actorID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.created(c, bid)
}

// Hire - POST /gigs/:id/hire/:bidId, только владелец гига
func (h *GigHandler) Hire(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	bid, err := h.hiringService.Hire(c.Request.Context(), c.Param("id"), c.Param("bidId"), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, bid)
}

// Complete - POST /gigs/:id/complete/:bidId, только нанятый фрилансер
func (h *GigHandler) Complete(c *gin.Context) {
	actorID, ok := h.actorID(c)
	if !ok {
		return
	}

	bid, err := h.hiringService.Complete(c.Request.Context(), c.Param("id"), c.Param("bidId"), actorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, bid)
}
