package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	domainRepo "github.com/afiagithub/VitalCare-server/internal/domain/repository"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type lookupRepository struct {
	districts *mongo.Collection
	upazilas  *mongo.Collection
}

func NewLookupRepository(db *mongo.Database) domainRepo.LookupRepository {
	return &lookupRepository{
		districts: db.Collection(database.CollectionDistricts),
		upazilas:  db.Collection(database.CollectionUpazilas),
	}
}

func (r *lookupRepository) Districts(ctx context.Context) ([]entity.District, error) {
	cursor, err := r.districts.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var districts []entity.District
	if err := cursor.All(ctx, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *lookupRepository) Upazilas(ctx context.Context) ([]entity.Upazila, error) {
	cursor, err := r.upazilas.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var upazilas []entity.Upazila
	if err := cursor.All(ctx, &upazilas); err != nil {
		return nil, err
	}
	return upazilas, nil
}
