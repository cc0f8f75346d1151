package handler

import (
	"encoding/json"
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/pkg/jwt"
	"github.com/afiagithub/VitalCare-server/pkg/response"
	"github.com/afiagithub/VitalCare-server/pkg/validator"
)

type AuthHandler struct {
	jwtService *jwt.JWTService
	validator  *validator.CustomValidator
}

func NewAuthHandler(jwtService *jwt.JWTService, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		validator:  validator,
	}
}

// IssueToken exchanges an identity payload for a signed short-lived
// bearer token. Identity proofing happened upstream at the external auth
// provider; this endpoint only mints the API's own credential.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.jwtService.GenerateAccessToken(req.Email, req.Name)
	if err != nil {
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.Success(w, http.StatusOK, "Token issued", dto.TokenResponse{Token: token})
}
