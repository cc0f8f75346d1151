package converter

import (
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:         user.ID.Hex(),
		Name:       user.Name,
		Email:      user.Email,
		ExternalID: user.ExternalID,
		Photo:      user.Photo,
		BloodType:  user.BloodType,
		District:   user.District,
		Upazila:    user.Upazila,
		Role:       string(user.Role),
		Status:     string(user.Status),
	}
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
