package handler

import (
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
)

// StatsHandler exposes the admin dashboard aggregations.
type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetBookingTotals returns the booking count per test for the bar chart.
func (h *StatsHandler) GetBookingTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.statsUsecase.BookingTotals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get booking totals")
		return
	}

	response.Success(w, http.StatusOK, "Booking totals retrieved successfully", totals)
}

// GetDeliveryRatio returns pending versus delivered report counts.
func (h *StatsHandler) GetDeliveryRatio(w http.ResponseWriter, r *http.Request) {
	ratio, err := h.statsUsecase.DeliveryRatio(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get delivery ratio")
		return
	}

	response.Success(w, http.StatusOK, "Delivery ratio retrieved successfully", ratio)
}

// GetTopTests returns the most booked tests for the featured section.
func (h *StatsHandler) GetTopTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.statsUsecase.TopTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get top tests")
		return
	}

	response.Success(w, http.StatusOK, "Top tests retrieved successfully", tests)
}
