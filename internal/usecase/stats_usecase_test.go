package usecase

import (
	"context"
	"testing"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	totals    []entity.BookingTotal
	pending   int64
	delivered int64
	tops      []entity.TopTest
	gotLimit  int
}

func (f *fakeStatsRepo) BookingTotals(ctx context.Context) ([]entity.BookingTotal, error) {
	return f.totals, nil
}

func (f *fakeStatsRepo) CountByReport(ctx context.Context, status entity.ReportStatus) (int64, error) {
	if status == entity.ReportDelivered {
		return f.delivered, nil
	}
	return f.pending, nil
}

func (f *fakeStatsRepo) TopTests(ctx context.Context, limit int) ([]entity.TopTest, error) {
	f.gotLimit = limit
	if len(f.tops) > limit {
		return f.tops[:limit], nil
	}
	return f.tops, nil
}

func TestDeliveryRatio(t *testing.T) {
	repo := &fakeStatsRepo{pending: 7, delivered: 3}
	uc := NewStatsUsecase(testLogger(), repo)

	ratio, err := uc.DeliveryRatio(context.Background())
	require.NoError(t, err)
	require.Len(t, ratio, 2)

	assert.Equal(t, string(entity.ReportPending), ratio[0].Status)
	assert.Equal(t, int64(7), ratio[0].Count)
	assert.Equal(t, string(entity.ReportDelivered), ratio[1].Status)
	assert.Equal(t, int64(3), ratio[1].Count)

	// The two slices partition the reservation set.
	assert.Equal(t, int64(10), ratio[0].Count+ratio[1].Count)
}

func TestTopTests_Limit(t *testing.T) {
	tops := make([]entity.TopTest, 10)
	for i := range tops {
		tops[i] = entity.TopTest{Title: "test", TotalBookings: 10 - i}
	}
	repo := &fakeStatsRepo{tops: tops}
	uc := NewStatsUsecase(testLogger(), repo)

	result, err := uc.TopTests(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, repo.gotLimit)
	assert.Len(t, result, 6)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].TotalBookings, result[i].TotalBookings)
	}
}

func TestBookingTotals(t *testing.T) {
	repo := &fakeStatsRepo{totals: []entity.BookingTotal{
		{TestID: "a", TotalBookings: 5, TestTitle: "CBC"},
		{TestID: "b", TotalBookings: 2, TestTitle: "X-Ray"},
	}}
	uc := NewStatsUsecase(testLogger(), repo)

	totals, err := uc.BookingTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "CBC", totals[0].TestTitle)
}
