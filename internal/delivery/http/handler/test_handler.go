package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestHandler struct {
	testUsecase usecase.TestUsecase
	validator   *validator.CustomValidator
}

func NewTestHandler(testUsecase usecase.TestUsecase, validator *validator.CustomValidator) *TestHandler {
	return &TestHandler{
		testUsecase: testUsecase,
		validator:   validator,
	}
}

// GetTests lists the catalog, optionally from a date lower bound, with
// offset/limit pagination via page/size query parameters.
func (h *TestHandler) GetTests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.TestFilter{
		DateFrom: query.Get("date"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Size, _ = strconv.Atoi(query.Get("size"))

	tests, err := h.testUsecase.GetTests(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get tests")
		return
	}

	meta := &response.Meta{Page: filter.Page, Size: filter.Size, Count: len(tests)}
	response.SuccessWithMeta(w, http.StatusOK, "Tests retrieved successfully", tests, meta)
}

// FilterTests is the companion exact-date listing.
func (h *TestHandler) FilterTests(w http.ResponseWriter, r *http.Request) {
	filter := entity.TestFilter{
		DateExact: r.URL.Query().Get("date"),
	}

	tests, err := h.testUsecase.GetTests(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to filter tests")
		return
	}

	response.Success(w, http.StatusOK, "Tests retrieved successfully", tests)
}

func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	test, err := h.testUsecase.GetTest(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to get test")
		return
	}

	response.Success(w, http.StatusOK, "", test)
}

func (h *TestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.CreateTest(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create test")
		return
	}

	response.Success(w, http.StatusCreated, "Test created successfully", test)
}

func (h *TestHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.UpdateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.testUsecase.UpdateTest(r.Context(), id, &req); err != nil {
		if errors.Is(err, usecase.ErrTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to update test")
		return
	}

	response.Success(w, http.StatusOK, "Test updated successfully", nil)
}

func (h *TestHandler) UpdateSlots(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.UpdateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.testUsecase.UpdateSlots(r.Context(), id, &req); err != nil {
		if errors.Is(err, usecase.ErrTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to update slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots updated successfully", nil)
}

func (h *TestHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	if err := h.testUsecase.DeleteTest(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrTestNotFound) {
			response.NotFound(w, "Test not found")
			return
		}
		response.InternalServerError(w, "Failed to delete test")
		return
	}

	response.Success(w, http.StatusOK, "Test deleted successfully", nil)
}

func (h *TestHandler) CountTests(w http.ResponseWriter, r *http.Request) {
	count, err := h.testUsecase.CountTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to count tests")
		return
	}

	response.Success(w, http.StatusOK, "", dto.TestCountResponse{Count: count})
}
