package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentService struct {
	gotAmount   int64
	gotCurrency string
	secret      string
	err         error
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	f.gotAmount = amount
	f.gotCurrency = currency
	return f.secret, f.err
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{name: "whole amount", price: 50, want: 5000},
		{name: "cents survive float drift", price: 19.99, want: 1999},
		{name: "another drift case", price: 29.99, want: 2999},
		{name: "zero", price: 0, want: 0},
		{name: "sub-cent truncates", price: 0.999, want: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(tt.price))
		})
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	svc := &fakePaymentService{secret: "pi_123_secret_abc"}
	uc := NewPaymentUsecase(testLogger(), svc)

	resp, err := uc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{Price: 19.99})
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret_abc", resp.ClientSecret)
	assert.Equal(t, int64(1999), svc.gotAmount)
	assert.Equal(t, "usd", svc.gotCurrency)
}

func TestCreatePaymentIntent_UpstreamFailure(t *testing.T) {
	svc := &fakePaymentService{err: errors.New("processor down")}
	uc := NewPaymentUsecase(testLogger(), svc)

	_, err := uc.CreatePaymentIntent(context.Background(), &dto.CreatePaymentIntentRequest{Price: 10})
	assert.Error(t, err)
}
