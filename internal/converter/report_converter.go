package converter

import (
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// ReportToResponse converts a Report entity to ReportResponse DTO
func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:            report.ID.Hex(),
		PatientEmail:  report.PatientEmail,
		ReservationID: report.ReservationID,
		Title:         report.Title,
		Details:       report.Details,
		ReportURL:     report.ReportURL,
		Date:          report.Date,
	}
}

// ReportsToResponses converts a slice of Report entities to DTOs
func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		responses[i] = *ReportToResponse(&reports[i])
	}
	return responses
}
