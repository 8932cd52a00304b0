package dto

type CreateBidRequest struct {
	Message string  `json:"message" validate:"required,min=5"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}
