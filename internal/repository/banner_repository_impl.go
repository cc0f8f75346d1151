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

type bannerRepository struct {
	collection *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) domainRepo.BannerRepository {
	return &bannerRepository{collection: db.Collection(database.CollectionBanners)}
}

func (r *bannerRepository) FindAll(ctx context.Context) ([]entity.Banner, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var banners []entity.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) FindActive(ctx context.Context) (*entity.Banner, error) {
	return r.findOne(ctx, bson.M{"isActive": true})
}

func (r *bannerRepository) FindActiveByCoupon(ctx context.Context, couponCode string) (*entity.Banner, error) {
	return r.findOne(ctx, bson.M{"coupon_code_name": couponCode, "isActive": true})
}

func (r *bannerRepository) findOne(ctx context.Context, filter bson.M) (*entity.Banner, error) {
	var banner entity.Banner
	err := r.collection.FindOne(ctx, filter).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) Insert(ctx context.Context, banner *entity.Banner) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, banner)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *bannerRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *bannerRepository) DeactivateAll(ctx context.Context) (int64, error) {
	result, err := r.collection.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *bannerRepository) Activate(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isActive": true}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
