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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type testRepository struct {
	collection *mongo.Collection
}

func NewTestRepository(db *mongo.Database) domainRepo.TestRepository {
	return &testRepository{collection: db.Collection(database.CollectionTests)}
}

func (r *testRepository) Find(ctx context.Context, filter entity.TestFilter) ([]entity.Test, error) {
	query := bson.M{}
	if filter.DateExact != "" {
		query["date"] = filter.DateExact
	} else if filter.DateFrom != "" {
		query["date"] = bson.M{"$gte": filter.DateFrom}
	}

	opts := options.Find()
	if filter.Size > 0 {
		opts.SetSkip(int64(filter.Page * filter.Size))
		opts.SetLimit(int64(filter.Size))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tests []entity.Test
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Test, error) {
	var test entity.Test
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&test)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) Insert(ctx context.Context, test *entity.Test) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, test)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *testRepository) UpdateCatalog(ctx context.Context, id primitive.ObjectID, test *entity.Test) (int64, error) {
	update := bson.M{"$set": bson.M{
		"image":             test.Image,
		"date":              test.Date,
		"slots":             test.Slots,
		"cost":              test.Cost,
		"title":             test.Title,
		"short_description": test.Description,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *testRepository) UpdateSlots(ctx context.Context, id primitive.ObjectID, slots string) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"slots": slots}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *testRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *testRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}
