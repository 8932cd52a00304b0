package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gigmarket_backend/internal/models"
	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/pkg/apperrors"
)

// NotificationService - чтение и пометка уведомлений.
// Создание уведомлений живет в HiringService, внутри его транзакций.
type NotificationService struct {
	repo *repositories.NotificationRepository
}

func NewNotificationService(repo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return notifications, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperrors.TransactionError(err)
	}
	return count, nil
}

// MarkRead помечает уведомление прочитанным. Чужое уведомление - 403,
// повторная пометка - no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id, actorID string) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.TransactionError(err)
	}
	if n.UserID != actorID {
		return apperrors.ErrNotificationAccessDenied
	}
	if n.IsRead {
		return nil
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return apperrors.TransactionError(err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return apperrors.TransactionError(err)
	}
	return nil
}
