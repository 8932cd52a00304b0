package dto

type CreateGigRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=120"`
	Description string  `json:"description" validate:"required,min=10"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// GigListQuery - query-параметры GET /gigs
type GigListQuery struct {
	Search    string   `form:"search"`
	Status    string   `form:"status"`
	MinBudget *float64 `form:"minBudget"`
	MaxBudget *float64 `form:"maxBudget"`
	Sort      string   `form:"sort"`
}
