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

type reservationRepository struct {
	collection *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) domainRepo.ReservationRepository {
	return &reservationRepository{collection: db.Collection(database.CollectionReservations)}
}

func (r *reservationRepository) FindByEmail(ctx context.Context, email string, pendingOnly bool) ([]entity.Reservation, error) {
	filter := bson.M{"email": email}
	if pendingOnly {
		filter["report"] = entity.ReportPending
	}
	return r.find(ctx, filter)
}

func (r *reservationRepository) FindByEmailAndTest(ctx context.Context, email, testID string) ([]entity.Reservation, error) {
	return r.find(ctx, bson.M{"email": email, "test_id": testID})
}

func (r *reservationRepository) FindByTestID(ctx context.Context, testID string) ([]entity.Reservation, error) {
	return r.find(ctx, bson.M{"test_id": testID})
}

func (r *reservationRepository) find(ctx context.Context, filter bson.M) ([]entity.Reservation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []entity.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Insert(ctx context.Context, reservation *entity.Reservation) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, reservation)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *reservationRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *reservationRepository) DeleteByEmailAndTest(ctx context.Context, email, testID string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"email": email, "test_id": testID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *reservationRepository) MarkDelivered(ctx context.Context, id primitive.ObjectID) (int64, error) {
	// Filtering on the pending state keeps the transition one-way.
	filter := bson.M{"_id": id, "report": entity.ReportPending}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"report": entity.ReportDelivered}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
