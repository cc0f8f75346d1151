package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerRepository interface {
	FindAll(ctx context.Context) ([]entity.Banner, error)
	FindActive(ctx context.Context) (*entity.Banner, error)
	FindActiveByCoupon(ctx context.Context, couponCode string) (*entity.Banner, error)
	Insert(ctx context.Context, banner *entity.Banner) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeactivateAll(ctx context.Context) (int64, error)
	Activate(ctx context.Context, id primitive.ObjectID) (int64, error)
}
