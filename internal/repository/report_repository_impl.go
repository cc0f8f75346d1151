package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	domainRepo "github.com/afiagithub/VitalCare-server/internal/domain/repository"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) domainRepo.ReportRepository {
	return &reportRepository{collection: db.Collection(database.CollectionReports)}
}

func (r *reportRepository) FindByPatientEmail(ctx context.Context, email string) ([]entity.Report, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"patient_email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []entity.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Insert(ctx context.Context, report *entity.Report) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}
