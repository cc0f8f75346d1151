package converter

import (
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// ReservationToResponse converts a Reservation entity to ReservationResponse DTO
func ReservationToResponse(reservation *entity.Reservation) *dto.ReservationResponse {
	if reservation == nil {
		return nil
	}

	return &dto.ReservationResponse{
		ID:     reservation.ID.Hex(),
		TestID: reservation.TestID,
		Email:  reservation.Email,
		Title:  reservation.Title,
		Price:  reservation.Price,
		Date:   reservation.Date,
		Report: string(reservation.Report),
	}
}

// ReservationsToResponses converts a slice of Reservation entities to DTOs
func ReservationsToResponses(reservations []entity.Reservation) []dto.ReservationResponse {
	responses := make([]dto.ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = *ReservationToResponse(&reservations[i])
	}
	return responses
}
