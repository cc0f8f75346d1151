package usecase

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	"github.com/afiagithub/VitalCare-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// topTestsLimit caps the top-tests view for the landing page carousel.
const topTestsLimit = 6

type StatsUsecase interface {
	BookingTotals(ctx context.Context) ([]entity.BookingTotal, error)
	DeliveryRatio(ctx context.Context) ([]dto.DeliveryStatusCount, error)
	TopTests(ctx context.Context) ([]entity.TopTest, error)
}

type statsUsecase struct {
	log       *logrus.Logger
	statsRepo repository.StatsRepository
}

func NewStatsUsecase(log *logrus.Logger, statsRepo repository.StatsRepository) StatsUsecase {
	return &statsUsecase{
		log:       log,
		statsRepo: statsRepo,
	}
}

func (u *statsUsecase) BookingTotals(ctx context.Context) ([]entity.BookingTotal, error) {
	totals, err := u.statsRepo.BookingTotals(ctx)
	if err != nil {
		u.log.Warnf("Failed to aggregate booking totals: %+v", err)
		return nil, err
	}
	return totals, nil
}

// DeliveryRatio returns the pending/delivered breakdown as two independent
// counts; their sum is the reservation total at query time.
func (u *statsUsecase) DeliveryRatio(ctx context.Context) ([]dto.DeliveryStatusCount, error) {
	pending, err := u.statsRepo.CountByReport(ctx, entity.ReportPending)
	if err != nil {
		u.log.Warnf("Failed to count pending reservations: %+v", err)
		return nil, err
	}

	delivered, err := u.statsRepo.CountByReport(ctx, entity.ReportDelivered)
	if err != nil {
		u.log.Warnf("Failed to count delivered reservations: %+v", err)
		return nil, err
	}

	return []dto.DeliveryStatusCount{
		{Status: string(entity.ReportPending), Count: pending},
		{Status: string(entity.ReportDelivered), Count: delivered},
	}, nil
}

func (u *statsUsecase) TopTests(ctx context.Context) ([]entity.TopTest, error) {
	tops, err := u.statsRepo.TopTests(ctx, topTestsLimit)
	if err != nil {
		u.log.Warnf("Failed to aggregate top tests: %+v", err)
		return nil, err
	}
	return tops, nil
}
