package models

// Gig - опубликованная работа с бюджетом.
// OwnerID неизменяем после создания; Status меняет только hiring state machine.
type Gig struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	OwnerID     string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Status      GigStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
