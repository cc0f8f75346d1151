package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContentRepository interface {
	Doctors(ctx context.Context) ([]entity.Doctor, error)
	Blogs(ctx context.Context) ([]entity.Blog, error)
	BlogByID(ctx context.Context, id primitive.ObjectID) (*entity.Blog, error)
	Recommendations(ctx context.Context) ([]entity.Recommendation, error)
}
