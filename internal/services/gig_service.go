package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gigmarket_backend/internal/auth"
	"gigmarket_backend/internal/models"
	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/internal/services/dto"
	"gigmarket_backend/internal/validator"
	"gigmarket_backend/pkg/apperrors"
)

// GigService - CRUD и листинг гигов. Статусы не трогает:
// все переходы принадлежат HiringService.
type GigService struct {
	gigRepo *repositories.GigRepository
	bidRepo *repositories.BidRepository
}

func NewGigService(gigRepo *repositories.GigRepository, bidRepo *repositories.BidRepository) *GigService {
	return &GigService{gigRepo: gigRepo, bidRepo: bidRepo}
}

func (s *GigService) Create(ctx context.Context, ownerID string, req dto.CreateGigRequest) (*models.Gig, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	gig := &models.Gig{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		OwnerID:     ownerID,
		Status:      models.GigStatusOpen,
	}
	if err := s.gigRepo.Create(ctx, gig); err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return gig, nil
}

func (s *GigService) GetByID(ctx context.Context, id string) (*models.Gig, error) {
	gig, err := s.gigRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.TransactionError(err)
	}
	return gig, nil
}

func (s *GigService) List(ctx context.Context, query dto.GigListQuery) ([]models.Gig, error) {
	// Публичная лента по умолчанию показывает только открытые гиги;
	// status=all снимает фильтр
	switch {
	case query.Status == "":
		query.Status = string(models.GigStatusOpen)
	case query.Status == "all":
		query.Status = ""
	case !models.ValidGigStatus(query.Status):
		return nil, apperrors.NewBadRequestError("Unknown gig status filter")
	}

	gigs, err := s.gigRepo.List(ctx, repositories.GigFilter{
		Search:    query.Search,
		Status:    query.Status,
		MinBudget: query.MinBudget,
		MaxBudget: query.MaxBudget,
		Sort:      query.Sort,
	})
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return gigs, nil
}

func (s *GigService) ListByOwner(ctx context.Context, ownerID string) ([]models.Gig, error) {
	gigs, err := s.gigRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return gigs, nil
}

// ListBids отдает отклики гига его владельцу
func (s *GigService) ListBids(ctx context.Context, gigID, actorID string) ([]models.Bid, error) {
	gig, err := s.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanViewBids(gig, actorID); err != nil {
		return nil, err
	}

	bids, err := s.bidRepo.ListByGig(ctx, gigID)
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return bids, nil
}

// ListMyBids отдает фрилансеру его отклики с гигами
func (s *GigService) ListMyBids(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	bids, err := s.bidRepo.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, apperrors.TransactionError(err)
	}
	return bids, nil
}
