package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserUsecase only cares about IsAdmin; the rest is interface filler.
type fakeUserUsecase struct {
	admins map[string]bool
	err    error
}

func (f *fakeUserUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

func (f *fakeUserUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	return nil, nil
}
func (f *fakeUserUsecase) GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserUsecase) GetUserByID(ctx context.Context, id primitive.ObjectID) (*dto.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserUsecase) UpsertProfile(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) error {
	return nil
}
func (f *fakeUserUsecase) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (f *fakeUserUsecase) BlockUser(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeUserUsecase) IsBlocked(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		noIdentity bool
		usecase    *fakeUserUsecase
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "admin passes",
			email:      "admin@example.com",
			usecase:    &fakeUserUsecase{admins: map[string]bool{"admin@example.com": true}},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "non-admin forbidden",
			email:      "user@example.com",
			usecase:    &fakeUserUsecase{admins: map[string]bool{"admin@example.com": true}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "absent user forbidden",
			email:      "ghost@example.com",
			usecase:    &fakeUserUsecase{},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing identity unauthorized",
			noIdentity: true,
			usecase:    &fakeUserUsecase{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lookup failure",
			email:      "admin@example.com",
			usecase:    &fakeUserUsecase{err: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAdminMiddleware(tt.usecase)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if !tt.noIdentity {
				ctx := context.WithValue(req.Context(), UserEmailKey, tt.email)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			m.RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
