package handler

import (
	"errors"
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentHandler serves the read-only reference and editorial collections:
// districts, upazilas, doctors, recommendations and blog posts.
type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
}

func NewContentHandler(contentUsecase usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

func (h *ContentHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.contentUsecase.Districts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get districts")
		return
	}

	response.Success(w, http.StatusOK, "Districts retrieved successfully", districts)
}

func (h *ContentHandler) GetUpazilas(w http.ResponseWriter, r *http.Request) {
	upazilas, err := h.contentUsecase.Upazilas(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get upazilas")
		return
	}

	response.Success(w, http.StatusOK, "Upazilas retrieved successfully", upazilas)
}

func (h *ContentHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.contentUsecase.Doctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *ContentHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.contentUsecase.Recommendations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get recommendations")
		return
	}

	response.Success(w, http.StatusOK, "Recommendations retrieved successfully", recommendations)
}

func (h *ContentHandler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.contentUsecase.Blogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blogs")
		return
	}

	response.Success(w, http.StatusOK, "Blogs retrieved successfully", blogs)
}

func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid blog ID")
		return
	}

	blog, err := h.contentUsecase.BlogByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBlogNotFound) {
			response.NotFound(w, "Blog not found")
			return
		}
		response.InternalServerError(w, "Failed to get blog")
		return
	}

	response.Success(w, http.StatusOK, "", blog)
}
