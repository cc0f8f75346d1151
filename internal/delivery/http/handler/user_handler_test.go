package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/middleware"
	"github.com/afiagithub/VitalCare-server/internal/usecase"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserUsecase struct {
	usecase.UserUsecase

	createErr  error
	createResp *dto.UserResponse
	admins     map[string]bool
}

func (s *stubUserUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResp, nil
}

func (s *stubUserUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.admins[email], nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateUser_DuplicateIsSoftSuccess(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{createErr: usecase.ErrUserExists}, validator.NewValidator())

	payload, _ := json.Marshal(dto.CreateUserRequest{
		Name:       "Patient One",
		Email:      "patient@example.com",
		ExternalID: "ext-1",
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User Already Exists", body["message"])
	assert.Nil(t, body["data"])
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{}, validator.NewValidator())

	payload, _ := json.Marshal(dto.CreateUserRequest{Name: "X", Email: "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAdminStatus_SelfOnly(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{admins: map[string]bool{"admin@example.com": true}}, validator.NewValidator())

	tests := []struct {
		name       string
		pathEmail  string
		claimEmail string
		wantStatus int
		wantAdmin  bool
	}{
		{name: "own email", pathEmail: "admin@example.com", claimEmail: "admin@example.com", wantStatus: http.StatusOK, wantAdmin: true},
		{name: "own email non-admin", pathEmail: "user@example.com", claimEmail: "user@example.com", wantStatus: http.StatusOK, wantAdmin: false},
		{name: "foreign email", pathEmail: "admin@example.com", claimEmail: "user@example.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/admin/"+tt.pathEmail, nil)
			req = mux.SetURLVars(req, map[string]string{"email": tt.pathEmail})
			ctx := context.WithValue(req.Context(), middleware.UserEmailKey, tt.claimEmail)
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			h.GetAdminStatus(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				body := decodeEnvelope(t, rec)
				data := body["data"].(map[string]interface{})
				assert.Equal(t, tt.wantAdmin, data["admin"])
			}
		})
	}
}

func TestGetUserByID_InvalidID(t *testing.T) {
	h := NewUserHandler(&stubUserUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/allUsers/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()

	h.GetUserByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
