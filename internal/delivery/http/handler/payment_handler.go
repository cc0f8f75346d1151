package handler

import (
	"encoding/json"
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
	"github.com/afiagithub/VitalCare-server/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// CreatePaymentIntent opens a payment for the given price and hands the
// client secret back for checkout confirmation on the client side.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	intent, err := h.paymentUsecase.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create payment intent")
		return
	}

	response.Success(w, http.StatusOK, "Payment intent created successfully", intent)
}
