package auth

import (
	"gigmarket_backend/internal/models"
	"gigmarket_backend/pkg/apperrors"
)

// Чистые проверки доступа hiring-цикла. Ни одна не ходит в БД:
// сервис загружает сущности, guard решает. Порядок проверок фиксирован -
// сначала принадлежность (actor), потом состояние, чтобы чужой актор
// не мог по коду ответа различать статусы чужого гига.

// CanHire: нанимать может только владелец гига, и только пока гиг открыт
func CanHire(gig *models.Gig, actorID string) error {
	if gig.OwnerID != actorID {
		return apperrors.ErrNotGigOwner
	}
	if gig.Status != models.GigStatusOpen {
		return apperrors.ErrGigNotOpen
	}
	return nil
}

// CanComplete: завершает работу нанятый фрилансер, и только из состояния hired
func CanComplete(bid *models.Bid, actorID string) error {
	if bid.FreelancerID != actorID {
		return apperrors.ErrNotBidOwner
	}
	if bid.Status != models.BidStatusHired {
		return apperrors.ErrBidNotHired
	}
	return nil
}

// CanBid: владелец не может откликнуться на собственный гиг,
// отклики принимаются только на открытые гиги
func CanBid(gig *models.Gig, actorID string) error {
	if gig.OwnerID == actorID {
		return apperrors.ErrOwnGigBid
	}
	if gig.Status != models.GigStatusOpen {
		return apperrors.ErrGigNotOpen
	}
	return nil
}

// CanViewBids: список откликов гига видит только его владелец
func CanViewBids(gig *models.Gig, actorID string) error {
	if gig.OwnerID != actorID {
		return apperrors.ErrNotGigOwner
	}
	return nil
}
