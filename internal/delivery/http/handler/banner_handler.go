package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerHandler struct {
	bannerUsecase usecase.BannerUsecase
	validator     *validator.CustomValidator
}

func NewBannerHandler(bannerUsecase usecase.BannerUsecase, validator *validator.CustomValidator) *BannerHandler {
	return &BannerHandler{
		bannerUsecase: bannerUsecase,
		validator:     validator,
	}
}

func (h *BannerHandler) GetAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerUsecase.GetAllBanners(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get banners")
		return
	}

	response.Success(w, http.StatusOK, "Banners retrieved successfully", banners)
}

// GetActiveBanner returns the banner currently shown on the home page, or
// null data when none is active.
func (h *BannerHandler) GetActiveBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := h.bannerUsecase.GetActiveBanner(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get active banner")
		return
	}

	response.Success(w, http.StatusOK, "", banner)
}

// GetActiveBannerByCoupon validates a coupon code against the active banner.
// A miss is null data, not an error, so the client can treat the coupon as
// simply invalid.
func (h *BannerHandler) GetActiveBannerByCoupon(w http.ResponseWriter, r *http.Request) {
	coupon := mux.Vars(r)["coupon"]

	banner, err := h.bannerUsecase.GetActiveCoupon(r.Context(), coupon)
	if err != nil {
		response.InternalServerError(w, "Failed to get banner")
		return
	}

	response.Success(w, http.StatusOK, "", banner)
}

func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	banner, err := h.bannerUsecase.CreateBanner(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create banner")
		return
	}

	response.Success(w, http.StatusCreated, "Banner created successfully", banner)
}

// ActivateBanner makes the given banner the single active one.
func (h *BannerHandler) ActivateBanner(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid banner ID")
		return
	}

	if err := h.bannerUsecase.ActivateBanner(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrBannerNotFound) {
			response.NotFound(w, "Banner not found")
			return
		}
		response.InternalServerError(w, "Failed to activate banner")
		return
	}

	response.Success(w, http.StatusOK, "Banner activated successfully", nil)
}

func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid banner ID")
		return
	}

	if err := h.bannerUsecase.DeleteBanner(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrBannerNotFound) {
			response.NotFound(w, "Banner not found")
			return
		}
		response.InternalServerError(w, "Failed to delete banner")
		return
	}

	response.Success(w, http.StatusOK, "Banner deleted successfully", nil)
}
