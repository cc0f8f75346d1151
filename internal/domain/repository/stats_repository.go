package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// StatsRepository computes the read-only reporting views over the
// reservations collection. On-demand only; nothing is cached or
// incrementally maintained.
type StatsRepository interface {
	// BookingTotals groups reservations by test id, counting rows and
	// carrying the first-seen title, sorted descending by count.
	BookingTotals(ctx context.Context) ([]entity.BookingTotal, error)
	// CountByReport counts reservations in the given report state.
	CountByReport(ctx context.Context, status entity.ReportStatus) (int64, error)
	// TopTests joins reservations to the test catalog and returns the
	// most-booked offerings, at most limit rows, sorted descending.
	TopTests(ctx context.Context, limit int) ([]entity.TopTest, error)
}
