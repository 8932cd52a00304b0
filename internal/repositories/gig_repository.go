package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gigmarket_backend/internal/models"
)

// GigFilter - параметры листинга гигов. Пустые поля не фильтруют.
type GigFilter struct {
	Search    string
	Status    string
	MinBudget *float64
	MaxBudget *float64
	Sort      string // newest | budget_asc | budget_desc
}

type GigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

// WithTx возвращает копию репозитория, привязанную к транзакции
func (r *GigRepository) WithTx(tx *gorm.DB) *GigRepository {
	return &GigRepository{db: tx}
}

func (r *GigRepository) Create(ctx context.Context, gig *models.Gig) error {
	return r.db.WithContext(ctx).Create(gig).Error
}

func (r *GigRepository) GetByID(ctx context.Context, id string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.WithContext(ctx).Preload("Owner").First(&gig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

// GetByIDForUpdate читает гиг под SELECT ... FOR UPDATE.
// Вызывать только внутри транзакции: блокировка держит конкурентные
// hire/complete до коммита первого.
func (r *GigRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&gig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

// UpdateStatusIf переводит статус гига условно: WHERE id AND status = from.
// Возвращает число затронутых строк - ноль означает, что состояние
// изменилось из-под нас, и переход невозможен.
func (r *GigRepository) UpdateStatusIf(ctx context.Context, id string, from, to models.GigStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Gig{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *GigRepository) List(ctx context.Context, filter GigFilter) ([]models.Gig, error) {
	q := r.db.WithContext(ctx).Model(&models.Gig{}).Preload("Owner")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.MinBudget != nil {
		q = q.Where("budget >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		q = q.Where("budget <= ?", *filter.MaxBudget)
	}

	switch filter.Sort {
	case "oldest":
		q = q.Order("created_at ASC")
	case "budget_asc":
		q = q.Order("budget ASC")
	case "budget_desc":
		q = q.Order("budget DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var gigs []models.Gig
	if err := q.Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *GigRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&gigs).Error
	if err != nil {
		return nil, err
	}
	return gigs, nil
}

func (r *GigRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Gig{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *GigRepository) CountByOwnerAndStatus(ctx context.Context, ownerID string, status models.GigStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Gig{}).
		Where("owner_id = ? AND status = ?", ownerID, status).
		Count(&count).Error
	return count, err
}
