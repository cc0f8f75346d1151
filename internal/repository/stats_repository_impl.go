package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	domainRepo "github.com/afiagithub/VitalCare-server/internal/domain/repository"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type statsRepository struct {
	reservations *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) domainRepo.StatsRepository {
	return &statsRepository{reservations: db.Collection(database.CollectionReservations)}
}

func bookingTotalsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$test_id"},
			{Key: "totalBookings", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "testTitle", Value: bson.D{{Key: "$first", Value: "$title"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalBookings", Value: -1}}}},
	}
}

func (r *statsRepository) BookingTotals(ctx context.Context) ([]entity.BookingTotal, error) {
	cursor, err := r.reservations.Aggregate(ctx, bookingTotalsPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []entity.BookingTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *statsRepository) CountByReport(ctx context.Context, status entity.ReportStatus) (int64, error) {
	return r.reservations.CountDocuments(ctx, bson.M{"report": status})
}

func topTestsPipeline(limit int) mongo.Pipeline {
	// test_id is stored as a hex string; cast before the catalog join.
	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{
			{Key: "testObjectId", Value: bson.D{{Key: "$toObjectId", Value: "$test_id"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionTests},
			{Key: "localField", Value: "testObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "testDetails"},
		}}},
		{{Key: "$unwind", Value: "$testDetails"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$test_id"},
			{Key: "totalBookings", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "testTitle", Value: bson.D{{Key: "$first", Value: "$title"}}},
			{Key: "date", Value: bson.D{{Key: "$first", Value: "$date"}}},
			{Key: "cost", Value: bson.D{{Key: "$first", Value: "$price"}}},
			{Key: "image", Value: bson.D{{Key: "$first", Value: "$testDetails.image"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalBookings", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "totalBookings", Value: 1},
			{Key: "title", Value: "$testTitle"},
			{Key: "date", Value: 1},
			{Key: "cost", Value: 1},
			{Key: "image", Value: 1},
		}}},
	}
}

func (r *statsRepository) TopTests(ctx context.Context, limit int) ([]entity.TopTest, error) {
	cursor, err := r.reservations.Aggregate(ctx, topTestsPipeline(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tops []entity.TopTest
	if err := cursor.All(ctx, &tops); err != nil {
		return nil, err
	}
	return tops, nil
}
