package middleware

import (
	"net/http"

	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/response"
)

// AdminMiddleware is the elevated-role gate. The role lives on the user
// record, not in the token, so every admin request loads the record for
// the verified email and checks it there. Runs after Authenticate.
type AdminMiddleware struct {
	userUsecase usecase.UserUsecase
}

func NewAdminMiddleware(userUsecase usecase.UserUsecase) *AdminMiddleware {
	return &AdminMiddleware{userUsecase: userUsecase}
}

func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Identity information not found")
			return
		}

		isAdmin, err := m.userUsecase.IsAdmin(r.Context(), email)
		if err != nil {
			response.InternalServerError(w, "Failed to verify role")
			return
		}
		if !isAdmin {
			response.Forbidden(w, "Forbidden access")
			return
		}

		next.ServeHTTP(w, r)
	})
}
