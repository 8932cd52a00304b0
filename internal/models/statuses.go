package models

type GigStatus string
type BidStatus string
type NotificationType string

const (
	// Статусы гига. Переходы строго однонаправленные:
	// open -> assigned -> completed
	GigStatusOpen      GigStatus = "open"
	GigStatusAssigned  GigStatus = "assigned"
	GigStatusCompleted GigStatus = "completed"

	// Статусы отклика. Переходы:
	// pending -> hired -> completed, либо pending -> rejected
	BidStatusPending   BidStatus = "pending"
	BidStatusHired     BidStatus = "hired"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusCompleted BidStatus = "completed"

	NotificationTypeHired     NotificationType = "HIRED"
	NotificationTypeCompleted NotificationType = "COMPLETED"
)

// ValidGigStatus проверяет валидность статуса гига (для фильтров списка)
func ValidGigStatus(s string) bool {
	switch GigStatus(s) {
	case GigStatusOpen, GigStatusAssigned, GigStatusCompleted:
		return true
	}
	return false
}
