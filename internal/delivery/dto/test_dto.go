package dto

// Request DTOs

type CreateTestRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"short_description" validate:"omitempty"`
	Image       string  `json:"image" validate:"omitempty"`
	Date        string  `json:"date" validate:"required"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Slots       string  `json:"slots" validate:"required,number"`
}

// UpdateTestRequest edits the catalog fields only. The slot count has its
// own narrower path, UpdateSlotsRequest, used at booking time.
type UpdateTestRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"short_description" validate:"omitempty"`
	Image       string  `json:"image" validate:"omitempty"`
	Date        string  `json:"date" validate:"required"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Slots       string  `json:"slots" validate:"required,number"`
}

type UpdateSlotsRequest struct {
	Slots string `json:"slots" validate:"required,number"`
}

// Response DTOs

type TestResponse struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"short_description"`
	Image       string  `json:"image"`
	Date        string  `json:"date"`
	Cost        float64 `json:"cost"`
	Slots       string  `json:"slots"`
}

type TestCountResponse struct {
	Count int64 `json:"count"`
}
