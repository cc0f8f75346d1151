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

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// GetAdminStatus reports whether the caller is an admin. Only the token's
// own email may be asked about.
func (h *UserHandler) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claimEmail, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok || claimEmail != email {
		response.Forbidden(w, "Forbidden access")
		return
	}

	isAdmin, err := h.userUsecase.IsAdmin(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to check role")
		return
	}

	response.Success(w, http.StatusOK, "", dto.AdminStatusResponse{Admin: isAdmin})
}

// GetBlockedStatus is unauthenticated: clients call it before sign-in to
// pre-empt blocked accounts. It reveals only a boolean.
func (h *UserHandler) GetBlockedStatus(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	blocked, err := h.userUsecase.IsBlocked(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to check status")
		return
	}

	response.Success(w, http.StatusOK, "", dto.BlockedStatusResponse{Blocked: blocked})
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		// Duplicate sign-ins are routine, not failures: the client shows
		// the notice and carries on with the existing account.
		if errors.Is(err, usecase.ErrUserExists) {
			response.Success(w, http.StatusOK, "User Already Exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to create user")
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.userUsecase.GetUserByEmail(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.userUsecase.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.userUsecase.UpsertProfile(r.Context(), id, &req); err != nil {
		response.InternalServerError(w, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", nil)
}

func (h *UserHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.userUsecase.PromoteToAdmin(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to promote user")
		return
	}

	response.Success(w, http.StatusOK, "User promoted successfully", nil)
}

func (h *UserHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.userUsecase.BlockUser(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to block user")
		return
	}

	response.Success(w, http.StatusOK, "User blocked successfully", nil)
}
