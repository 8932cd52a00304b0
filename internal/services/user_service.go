package services

import (
	"context"

	"gigmarket_backend/internal/models"
	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/internal/services/dto"
	"gigmarket_backend/pkg/apperrors"
)

type UserService struct {
	userRepo *repositories.UserRepository
	gigRepo  *repositories.GigRepository
	bidRepo  *repositories.BidRepository
}

func NewUserService(
	userRepo *repositories.UserRepository,
	gigRepo *repositories.GigRepository,
	bidRepo *repositories.BidRepository,
) *UserService {
	return &UserService{userRepo: userRepo, gigRepo: gigRepo, bidRepo: bidRepo}
}

// DashboardStats собирает счетчики кабинета по обеим ролям пользователя.
// GigsHired намеренно шире CurrentlyAssigned: первый - история наймов
// (hired и completed), второй - только активные hired.
func (s *UserService) DashboardStats(ctx context.Context, userID string) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.GigsPosted, err = s.gigRepo.CountByOwner(ctx, userID); err != nil {
		return nil, apperrors.TransactionError(err)
	}
	if stats.GigsCompleted, err = s.gigRepo.CountByOwnerAndStatus(ctx, userID, models.GigStatusCompleted); err != nil {
		return nil, apperrors.TransactionError(err)
	}
	if stats.BidsSubmitted, err = s.bidRepo.CountByFreelancer(ctx, userID); err != nil {
		return nil, apperrors.TransactionError(err)
	}
	if stats.GigsHired, err = s.bidRepo.CountByFreelancerAndStatuses(ctx, userID,
		[]models.BidStatus{models.BidStatusHired, models.BidStatusCompleted}); err != nil {
		return nil, apperrors.TransactionError(err)
	}
	if stats.CurrentlyAssigned, err = s.bidRepo.CountByFreelancerAndStatuses(ctx, userID,
		[]models.BidStatus{models.BidStatusHired}); err != nil {
		return nil, apperrors.TransactionError(err)
	}
	if stats.JobsCompleted, err = s.bidRepo.CountByFreelancerAndStatuses(ctx, userID,
		[]models.BidStatus{models.BidStatusCompleted}); err != nil {
		return nil, apperrors.TransactionError(err)
	}

	return stats, nil
}

// DashboardBids - список откликов кабинета под выбранный фильтр.
// hired шире active по той же причине, что GigsHired шире CurrentlyAssigned.
func (s *UserService) DashboardBids(ctx context.Context, userID, filter string) ([]models.Bid, error) {
	var statuses []models.BidStatus
	switch filter {
	case "", "bids":
		statuses = []models.BidStatus{models.BidStatusPending, models.BidStatusHired, models.BidStatusRejected, models.BidStatusCompleted}
	case "hired":
		statuses = []models.BidStatus{models.BidStatusHired, models.BidStatusCompleted}
	case "active":
		statuses = []models.BidStatus{models.BidStatusHired}
	case "completed":
		statuses = []models.BidStatus{models.BidStatusCompleted}
	default:
		return nil, apperrors.NewBadRequestError("Unknown dashboard filter")
	}

	bids, err := s.bidRepo.ListByFreelancerAndStatuses(ctx, userID, statuses)
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return bids, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err, "user", "User not found")
	}
	return user, nil
}
