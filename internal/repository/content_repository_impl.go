package repository

import (
	"context"
	"errors"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	domainRepo "github.com/afiagithub/VitalCare-server/internal/domain/repository"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type contentRepository struct {
	doctors         *mongo.Collection
	blogs           *mongo.Collection
	recommendations *mongo.Collection
}

func NewContentRepository(db *mongo.Database) domainRepo.ContentRepository {
	return &contentRepository{
		doctors:         db.Collection(database.CollectionDoctors),
		blogs:           db.Collection(database.CollectionBlogs),
		recommendations: db.Collection(database.CollectionRecommendations),
	}
}

func (r *contentRepository) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	cursor, err := r.doctors.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []entity.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *contentRepository) Blogs(ctx context.Context) ([]entity.Blog, error) {
	cursor, err := r.blogs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *contentRepository) BlogByID(ctx context.Context, id primitive.ObjectID) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (r *contentRepository) Recommendations(ctx context.Context) ([]entity.Recommendation, error) {
	cursor, err := r.recommendations.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recommendations []entity.Recommendation
	if err := cursor.All(ctx, &recommendations); err != nil {
		return nil, err
	}
	return recommendations, nil
}
