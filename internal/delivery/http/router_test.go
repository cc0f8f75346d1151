package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/afiagithub/VitalCare-server/config"
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/handler"
	"github.com/afiagithub/VitalCare-server/internal/delivery/http/middleware"
	"github.com/afiagithub/VitalCare-server/pkg/jwt"
	"github.com/afiagithub/VitalCare-server/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentUsecase struct {
	called bool
}

func (s *stubPaymentUsecase) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	s.called = true
	return &dto.PaymentIntentResponse{ClientSecret: "pi_test_secret"}, nil
}

const testOrigin = "https://diagnostic-app-auth.web.app"

func newTestRouter(payment *stubPaymentUsecase) http.Handler {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "router-test-secret",
		AccessExpiry: time.Hour,
	})
	v := validator.NewValidator()

	r := NewRouter(
		handler.NewAuthHandler(jwtService, v),
		handler.NewUserHandler(nil, v),
		handler.NewTestHandler(nil, v),
		handler.NewReservationHandler(nil, v),
		handler.NewReportHandler(nil, v),
		handler.NewBannerHandler(nil, v),
		handler.NewContentHandler(nil),
		handler.NewPaymentHandler(payment, v),
		handler.NewStatsHandler(nil),
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewAdminMiddleware(nil),
		middleware.NewCORSMiddleware([]string{testOrigin}),
	)
	return r.Setup()
}

func TestPreflightAnsweredWithCORSHeaders(t *testing.T) {
	h := newTestRouter(&stubPaymentUsecase{})

	req := httptest.NewRequest(http.MethodOptions, "/cancel-reserve/abc", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestPreflightUnknownOriginNotEchoed(t *testing.T) {
	h := newTestRouter(&stubPaymentUsecase{})

	req := httptest.NewRequest(http.MethodOptions, "/cancel-reserve/abc", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreatePaymentIntentRequiresNoToken(t *testing.T) {
	payment := &stubPaymentUsecase{}
	h := newTestRouter(payment)

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price": 19.99}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, payment.called)
}
