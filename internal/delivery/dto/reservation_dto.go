package dto

// Request DTOs

type CreateReservationRequest struct {
	TestID string  `json:"test_id" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Title  string  `json:"title" validate:"required"`
	Price  float64 `json:"price" validate:"gte=0"`
	Date   string  `json:"date" validate:"omitempty"`
}

// Response DTOs

type ReservationResponse struct {
	ID     string  `json:"_id"`
	TestID string  `json:"test_id"`
	Email  string  `json:"email"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
	Report string  `json:"report"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// CancelReservationResponse reports the state after a cancellation: the
// restored slot count and how many reservation rows were removed.
type CancelReservationResponse struct {
	TestID  string `json:"test_id"`
	Slots   string `json:"slots"`
	Removed int64  `json:"removed"`
}
