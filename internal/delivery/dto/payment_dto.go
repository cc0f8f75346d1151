package dto

// Request DTOs

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// Response DTOs

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
