package converter

import (
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// BannerToResponse converts a Banner entity to BannerResponse DTO
func BannerToResponse(banner *entity.Banner) *dto.BannerResponse {
	if banner == nil {
		return nil
	}

	return &dto.BannerResponse{
		ID:         banner.ID.Hex(),
		Name:       banner.Name,
		Image:      banner.Image,
		Title:      banner.Title,
		Text:       banner.Text,
		CouponCode: banner.CouponCode,
		Rate:       banner.Rate,
		IsActive:   banner.IsActive,
	}
}

// BannersToResponses converts a slice of Banner entities to DTOs
func BannersToResponses(banners []entity.Banner) []dto.BannerResponse {
	responses := make([]dto.BannerResponse, len(banners))
	for i := range banners {
		responses[i] = *BannerToResponse(&banners[i])
	}
	return responses
}
