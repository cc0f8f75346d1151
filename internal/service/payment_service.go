package service

import (
	"context"

	"github.com/afiagithub/VitalCare-server/config"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentService creates payment intents with the external processor and
// hands back the client-usable secret. Failures propagate; no retry.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type stripePaymentService struct {
	log *logrus.Logger
}

func NewStripePaymentService(cfg config.StripeConfig, log *logrus.Logger) PaymentService {
	stripe.Key = cfg.SecretKey
	return &stripePaymentService{log: log}
}

func (s *stripePaymentService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		s.log.Warnf("Failed to create payment intent for amount %d: %+v", amount, err)
		return "", err
	}

	return intent.ClientSecret, nil
}
