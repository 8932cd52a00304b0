package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gigmarket_backend/internal/auth"
	"gigmarket_backend/internal/logger"
	"gigmarket_backend/internal/models"
	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/internal/services/dto"
	"gigmarket_backend/internal/validator"
	"gigmarket_backend/pkg/apperrors"
)

// NotificationPusher доставляет уведомление подключенному получателю
// в реальном времени. Доставка best-effort: ошибка пуша логируется
// и никогда не влияет на результат операции.
type NotificationPusher interface {
	PushToUser(userID string, payload dto.NotificationPayload) error
}

// HiringService - state machine жизненного цикла найма.
// Все переходы статусов гигов и откликов происходят только здесь,
// каждый - в одной транзакции вместе со своими side effects.
type HiringService struct {
	db               *gorm.DB
	gigRepo          *repositories.GigRepository
	bidRepo          *repositories.BidRepository
	notificationRepo *repositories.NotificationRepository
	pusher           NotificationPusher
}

func NewHiringService(
	db *gorm.DB,
	gigRepo *repositories.GigRepository,
	bidRepo *repositories.BidRepository,
	notificationRepo *repositories.NotificationRepository,
	pusher NotificationPusher,
) *HiringService {
	return &HiringService{
		db:               db,
		gigRepo:          gigRepo,
		bidRepo:          bidRepo,
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Hire нанимает фрилансера по отклику. Атомарно:
// гиг open -> assigned, отклик pending -> hired, остальные pending
// отклики гига -> rejected, плюс HIRED-уведомление фрилансеру.
// При гонке двух наймов выигрывает первый коммит, второй получает 409.
func (s *HiringService) Hire(ctx context.Context, gigID, bidID, actorID string) (*models.Bid, error) {
	var hired *models.Bid
	var notification *models.Notification

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bidRepo := s.bidRepo.WithTx(tx)
		gigRepo := s.gigRepo.WithTx(tx)

		bid, err := bidRepo.GetByID(ctx, bidID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBidNotFound
			}
			return err
		}
		if bid.GigID != gigID {
			return apperrors.ErrBidGigMismatch
		}

		// Блокируем строку гига: конкурентный Hire/Complete ждет коммита
		gig, err := gigRepo.GetByIDForUpdate(ctx, gigID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGigNotFound
			}
			return err
		}

		if err := auth.CanHire(gig, actorID); err != nil {
			return err
		}
		if bid.Status != models.BidStatusPending {
			return apperrors.ErrBidNotPending
		}

		// Условный апдейт - страховка на случай, если блокировку
		// обошли (другой уровень изоляции, прямой апдейт мимо сервиса)
		rows, err := gigRepo.UpdateStatusIf(ctx, gigID, models.GigStatusOpen, models.GigStatusAssigned)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.ErrGigNotOpen
		}

		if err := bidRepo.UpdateStatus(ctx, bidID, models.BidStatusHired); err != nil {
			return err
		}
		if err := bidRepo.RejectOtherPending(ctx, gigID, bidID); err != nil {
			return err
		}

		notification, err = s.createNotification(ctx, tx, &models.Notification{
			UserID:  bid.FreelancerID,
			Type:    models.NotificationTypeHired,
			Message: fmt.Sprintf("🎉 You have been hired for %q!", gig.Title),
			GigID:   &gig.ID,
		}, map[string]interface{}{"bid_id": bid.ID, "price": bid.Price})
		if err != nil {
			return err
		}

		bid.Status = models.BidStatusHired
		hired = bid
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.pushNotification(ctx, notification)
	return hired, nil
}

// Complete закрывает нанятую работу. Атомарно: гиг assigned -> completed,
// отклик hired -> completed, COMPLETED-уведомление владельцу гига.
func (s *HiringService) Complete(ctx context.Context, gigID, bidID, actorID string) (*models.Bid, error) {
	var completed *models.Bid
	var notification *models.Notification

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bidRepo := s.bidRepo.WithTx(tx)
		gigRepo := s.gigRepo.WithTx(tx)

		bid, err := bidRepo.GetByID(ctx, bidID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBidNotFound
			}
			return err
		}
		if bid.GigID != gigID {
			return apperrors.ErrBidGigMismatch
		}

		gig, err := gigRepo.GetByIDForUpdate(ctx, gigID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGigNotFound
			}
			return err
		}

		if err := auth.CanComplete(bid, actorID); err != nil {
			return err
		}

		rows, err := gigRepo.UpdateStatusIf(ctx, gigID, models.GigStatusAssigned, models.GigStatusCompleted)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.ErrBidNotHired
		}

		if err := bidRepo.UpdateStatus(ctx, bidID, models.BidStatusCompleted); err != nil {
			return err
		}

		notification, err = s.createNotification(ctx, tx, &models.Notification{
			UserID:  gig.OwnerID,
			Type:    models.NotificationTypeCompleted,
			Message: fmt.Sprintf("✅ Job %q has been marked as completed by freelancer!", gig.Title),
			GigID:   &gig.ID,
		}, map[string]interface{}{"bid_id": bid.ID})
		if err != nil {
			return err
		}

		bid.Status = models.BidStatusCompleted
		completed = bid
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.pushNotification(ctx, notification)
	return completed, nil
}

// CreateBid размещает отклик на открытый гиг. Гиг читается под
// блокировкой, чтобы отклик не проскочил в момент конкурентного найма.
func (s *HiringService) CreateBid(ctx context.Context, gigID, actorID string, req dto.CreateBidRequest) (*models.Bid, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	var created *models.Bid
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bidRepo := s.bidRepo.WithTx(tx)
		gigRepo := s.gigRepo.WithTx(tx)

		gig, err := gigRepo.GetByIDForUpdate(ctx, gigID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGigNotFound
			}
			return err
		}

		if err := auth.CanBid(gig, actorID); err != nil {
			return err
		}

		exists, err := bidRepo.ExistsByGigAndFreelancer(ctx, gigID, actorID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDuplicateBid
		}

		bid := &models.Bid{
			GigID:        gigID,
			FreelancerID: actorID,
			Message:      req.Message,
			Price:        req.Price,
			Status:       models.BidStatusPending,
		}
		if err := bidRepo.Create(ctx, bid); err != nil {
			return err
		}
		created = bid
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}
	return created, nil
}

func (s *HiringService) createNotification(ctx context.Context, tx *gorm.DB, n *models.Notification, data map[string]interface{}) (*models.Notification, error) {
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		n.Data = raw
	}
	if err := s.notificationRepo.WithTx(tx).Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// pushNotification - после коммита, вне транзакции. Получатель офлайн
// или пуш упал - запись уже долговечна, клиент увидит ее через REST.
func (s *HiringService) pushNotification(ctx context.Context, n *models.Notification) {
	if s.pusher == nil || n == nil {
		return
	}

	var data interface{}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}
	err := s.pusher.PushToUser(n.UserID, dto.NotificationPayload{
		ID:      n.ID,
		Type:    string(n.Type),
		Message: n.Message,
		GigID:   n.GigID,
		Data:    data,
	})
	if err != nil {
		logger.CtxWarn(ctx, "realtime push failed", "user_id", n.UserID, "notification_id", n.ID, "error", err)
	}
}

// asServiceError пропускает доменные ошибки как есть,
// все остальное считает сбоем транзакции
func asServiceError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.TransactionError(err)
}
