package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	Insert(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	UpsertProfile(ctx context.Context, id primitive.ObjectID, user *entity.User) error
	SetRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status entity.UserStatus) (int64, error)
}
