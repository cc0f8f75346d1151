package dto

// Request DTOs

// TokenRequest is the identity payload a client exchanges for a bearer
// token after signing in with the external auth provider.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	Token string `json:"token"`
}
