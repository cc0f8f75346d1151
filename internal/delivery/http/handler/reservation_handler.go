package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/middleware"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationHandler struct {
	reservationUsecase usecase.ReservationUsecase
	validator          *validator.CustomValidator
}

func NewReservationHandler(reservationUsecase usecase.ReservationUsecase, validator *validator.CustomValidator) *ReservationHandler {
	return &ReservationHandler{
		reservationUsecase: reservationUsecase,
		validator:          validator,
	}
}

// GetPendingReservations lists a user's reservations still awaiting their
// report.
func (h *ReservationHandler) GetPendingReservations(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	reservations, err := h.reservationUsecase.GetReservationsForUser(r.Context(), email, false)
	if err != nil {
		response.InternalServerError(w, "Failed to get reservations")
		return
	}

	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}

// GetAllReservations is the download listing: pending and delivered both.
func (h *ReservationHandler) GetAllReservations(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	reservations, err := h.reservationUsecase.GetReservationsForUser(r.Context(), email, true)
	if err != nil {
		response.InternalServerError(w, "Failed to get reservations")
		return
	}

	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}

func (h *ReservationHandler) SearchReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	reservations, err := h.reservationUsecase.SearchReservations(r.Context(), query.Get("email"), query.Get("test_id"))
	if err != nil {
		response.InternalServerError(w, "Failed to search reservations")
		return
	}

	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}

func (h *ReservationHandler) GetReservationsByTest(w http.ResponseWriter, r *http.Request) {
	testID := mux.Vars(r)["id"]

	reservations, err := h.reservationUsecase.GetReservationsByTest(r.Context(), testID)
	if err != nil {
		response.InternalServerError(w, "Failed to get reservations")
		return
	}

	response.Success(w, http.StatusOK, "Reservations retrieved successfully", reservations)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid reservation ID")
		return
	}

	reservation, err := h.reservationUsecase.GetReservation(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			response.NotFound(w, "Reservation not found")
			return
		}
		response.InternalServerError(w, "Failed to get reservation")
		return
	}

	response.Success(w, http.StatusOK, "", reservation)
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reservation, err := h.reservationUsecase.CreateReservation(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create reservation")
		return
	}

	response.Success(w, http.StatusCreated, "Reservation created successfully", reservation)
}

// CancelReservation restores the test slot and removes the caller's own
// reservation in one step. The identity comes from the token, never the
// request body, so one user cannot cancel for another.
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	testID, err := primitive.ObjectIDFromHex(mux.Vars(r)["test_id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity information not found")
		return
	}

	result, err := h.reservationUsecase.CancelReservation(r.Context(), testID, email)
	if err != nil {
		if errors.Is(err, usecase.ErrTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to cancel reservation")
		return
	}

	response.Success(w, http.StatusOK, "Reservation cancelled successfully", result)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid reservation ID")
		return
	}

	if err := h.reservationUsecase.DeleteReservation(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			response.NotFound(w, "Reservation not found")
			return
		}
		response.InternalServerError(w, "Failed to delete reservation")
		return
	}

	response.Success(w, http.StatusOK, "Reservation deleted successfully", nil)
}

// DeliverReport marks a reservation's report as delivered.
func (h *ReservationHandler) DeliverReport(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid reservation ID")
		return
	}

	if err := h.reservationUsecase.MarkDelivered(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			response.NotFound(w, "Reservation not found")
		case errors.Is(err, usecase.ErrReportNotPending):
			response.Error(w, http.StatusConflict, "Report already delivered", nil)
		default:
			response.InternalServerError(w, "Failed to deliver report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report delivered successfully", nil)
}
