package handlers

import (
	"gigmarket_backend/internal/services"
)

// AppHandlers держит все хендлеры приложения
type AppHandlers struct {
	Gig          *GigHandler
	Bid          *BidHandler
	Notification *NotificationHandler
	User         *UserHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		Gig:          NewGigHandler(sc.Gig, sc.Hiring),
		Bid:          NewBidHandler(sc.Gig),
		Notification: NewNotificationHandler(sc.Notification),
		User:         NewUserHandler(sc.User),
	}
}
