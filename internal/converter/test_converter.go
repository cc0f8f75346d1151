package converter

import (
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// TestToResponse converts a Test entity to TestResponse DTO
func TestToResponse(test *entity.Test) *dto.TestResponse {
	if test == nil {
		return nil
	}

	return &dto.TestResponse{
		ID:          test.ID.Hex(),
		Title:       test.Title,
		Description: test.Description,
		Image:       test.Image,
		Date:        test.Date,
		Cost:        test.Cost,
		Slots:       test.Slots,
	}
}

// TestsToResponses converts a slice of Test entities to TestResponse DTOs
func TestsToResponses(tests []entity.Test) []dto.TestResponse {
	responses := make([]dto.TestResponse, len(tests))
	for i := range tests {
		responses[i] = *TestToResponse(&tests[i])
	}
	return responses
}
