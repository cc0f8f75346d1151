package usecase

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// paymentCurrency is fixed; the input price is currency-agnostic.
const paymentCurrency = "usd"

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

type paymentUsecase struct {
	log            *logrus.Logger
	paymentService service.PaymentService
}

func NewPaymentUsecase(log *logrus.Logger, paymentService service.PaymentService) PaymentUsecase {
	return &paymentUsecase{
		log:            log,
		paymentService: paymentService,
	}
}

// CreatePaymentIntent converts the price to integer minor units (price
// times 100, truncated) and asks the processor for a card payment intent.
func (u *paymentUsecase) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	amount := MinorUnits(req.Price)

	clientSecret, err := u.paymentService.CreateIntent(ctx, amount, paymentCurrency)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentIntentResponse{ClientSecret: clientSecret}, nil
}

// MinorUnits truncates price*100 to an integer amount of minor units.
// decimal arithmetic avoids the float drift of e.g. 19.99*100.
func MinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).IntPart()
}
