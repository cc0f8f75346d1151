package handler

import (
	"encoding/json"
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/middleware"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// GetReportsForPatient returns the reports belonging to the given patient
// email. Patients can only read their own reports.
func (h *ReportHandler) GetReportsForPatient(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	tokenEmail, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok || tokenEmail != email {
		response.Forbidden(w, "Forbidden Access")
		return
	}

	reports, err := h.reportUsecase.GetReportsForPatient(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.CreateReport(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create report")
		return
	}

	response.Success(w, http.StatusCreated, "Report created successfully", report)
}
