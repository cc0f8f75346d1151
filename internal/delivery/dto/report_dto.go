package dto

// Request DTOs

type CreateReportRequest struct {
	PatientEmail  string `json:"patient_email" validate:"required,email"`
	ReservationID string `json:"reservation_id" validate:"omitempty"`
	Title         string `json:"title" validate:"required"`
	Details       string `json:"details" validate:"omitempty"`
	ReportURL     string `json:"report_url" validate:"omitempty,url"`
	Date          string `json:"date" validate:"omitempty"`
}

// Response DTOs

type ReportResponse struct {
	ID            string `json:"_id"`
	PatientEmail  string `json:"patient_email"`
	ReservationID string `json:"reservation_id"`
	Title         string `json:"title"`
	Details       string `json:"details"`
	ReportURL     string `json:"report_url"`
	Date          string `json:"date"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
