package dto

// Request DTOs

type CreateBannerRequest struct {
	Name       string  `json:"name" validate:"required"`
	Image      string  `json:"image" validate:"omitempty"`
	Title      string  `json:"title" validate:"omitempty"`
	Text       string  `json:"text" validate:"omitempty"`
	CouponCode string  `json:"coupon_code_name" validate:"omitempty"`
	Rate       float64 `json:"rate" validate:"gte=0"`
	IsActive   bool    `json:"isActive"`
}

// Response DTOs

type BannerResponse struct {
	ID         string  `json:"_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	CouponCode string  `json:"coupon_code_name"`
	Rate       float64 `json:"rate"`
	IsActive   bool    `json:"isActive"`
}

type BannerListResponse struct {
	Banners []BannerResponse `json:"banners"`
	Total   int              `json:"total"`
}
