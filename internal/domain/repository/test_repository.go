package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestRepository interface {
	Find(ctx context.Context, filter entity.TestFilter) ([]entity.Test, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Test, error)
	Insert(ctx context.Context, test *entity.Test) (primitive.ObjectID, error)
	// UpdateCatalog replaces the catalog fields only (image, date, slots,
	// cost, title, description).
	UpdateCatalog(ctx context.Context, id primitive.ObjectID, test *entity.Test) (int64, error)
	// UpdateSlots mutates only the remaining slot count.
	UpdateSlots(ctx context.Context, id primitive.ObjectID, slots string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
