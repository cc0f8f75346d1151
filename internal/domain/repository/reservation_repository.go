package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationRepository interface {
	// FindByEmail lists a user's reservations; pendingOnly restricts the
	// listing to rows whose report has not been delivered yet.
	FindByEmail(ctx context.Context, email string, pendingOnly bool) ([]entity.Reservation, error)
	FindByEmailAndTest(ctx context.Context, email, testID string) ([]entity.Reservation, error)
	FindByTestID(ctx context.Context, testID string) ([]entity.Reservation, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Reservation, error)
	Insert(ctx context.Context, reservation *entity.Reservation) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByEmailAndTest(ctx context.Context, email, testID string) (int64, error)
	// MarkDelivered flips the report status from pending to delivered.
	// Already-delivered rows are left untouched.
	MarkDelivered(ctx context.Context, id primitive.ObjectID) (int64, error)
}
