package models

// Bid - отклик фрилансера на открытый гиг.
// На один гиг не более одного отклика может достичь hired/completed.
type Bid struct {
	BaseModel
	GigID        string    `gorm:"type:uuid;not null;index" json:"gig_id"`
	FreelancerID string    `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	Message      string    `gorm:"not null" json:"message"`
	Price        float64   `gorm:"not null" json:"price"`
	Status       BidStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Gig        *Gig  `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}
