package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification - долговечная запись о значимом переходе состояния.
// Создается только как side effect транзакции state machine;
// после создания мутирует только флаг прочтения (и только получателем).
type Notification struct {
	BaseModel
	UserID  string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Message string           `gorm:"not null" json:"message"`
	GigID   *string          `gorm:"type:uuid;index" json:"gig_id,omitempty"`
	Data    datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"` // {"bid_id": "...", "price": ...}
	IsRead  bool             `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time       `json:"read_at,omitempty"`
}
