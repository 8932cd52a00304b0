package services

import (
	"gorm.io/gorm"

	"gigmarket_backend/internal/repositories"
)

// ServiceContainer держит все сервисы приложения
type ServiceContainer struct {
	Hiring       *HiringService
	Gig          *GigService
	Notification *NotificationService
	User         *UserService
}

// NewServiceContainer собирает репозитории и сервисы.
// pusher может быть nil - тогда уведомления остаются только долговечными.
func NewServiceContainer(db *gorm.DB, pusher NotificationPusher) *ServiceContainer {
	gigRepo := repositories.NewGigRepository(db)
	bidRepo := repositories.NewBidRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	userRepo := repositories.NewUserRepository(db)

	return &ServiceContainer{
		Hiring:       NewHiringService(db, gigRepo, bidRepo, notificationRepo, pusher),
		Gig:          NewGigService(gigRepo, bidRepo),
		Notification: NewNotificationService(notificationRepo),
		User:         NewUserService(userRepo, gigRepo, bidRepo),
	}
}
