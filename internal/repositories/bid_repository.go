package repositories

import (
	"context"

	"gorm.io/gorm"

	"gigmarket_backend/internal/models"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) WithTx(tx *gorm.DB) *BidRepository {
	return &BidRepository{db: tx}
}

func (r *BidRepository) Create(ctx context.Context, bid *models.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

func (r *BidRepository) GetByID(ctx context.Context, id string) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).First(&bid, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) ListByGig(ctx context.Context, gigID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Preload("Freelancer").
		Where("gig_id = ?", gigID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Preload("Gig").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) ListByFreelancerAndStatuses(ctx context.Context, freelancerID string, statuses []models.BidStatus) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Preload("Gig").
		Where("freelancer_id = ? AND status IN ?", freelancerID, statuses).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) ExistsByGigAndFreelancer(ctx context.Context, gigID, freelancerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("gig_id = ? AND freelancer_id = ?", gigID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *BidRepository) UpdateStatus(ctx context.Context, id string, status models.BidStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// RejectOtherPending массово отклоняет все прочие pending-отклики гига.
// Нанятый отклик исключается по ID, а не по статусу, чтобы апдейт был
// идемпотентен относительно порядка внутри транзакции.
func (r *BidRepository) RejectOtherPending(ctx context.Context, gigID, hiredBidID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("gig_id = ? AND id <> ? AND status = ?", gigID, hiredBidID, models.BidStatusPending).
		Update("status", models.BidStatusRejected).Error
}

func (r *BidRepository) CountByFreelancer(ctx context.Context, freelancerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("freelancer_id = ?", freelancerID).
		Count(&count).Error
	return count, err
}

func (r *BidRepository) CountByFreelancerAndStatuses(ctx context.Context, freelancerID string, statuses []models.BidStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("freelancer_id = ? AND status IN ?", freelancerID, statuses).
		Count(&count).Error
	return count, err
}
