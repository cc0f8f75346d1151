package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportRepository interface {
	FindByPatientEmail(ctx context.Context, email string) ([]entity.Report, error)
	Insert(ctx context.Context, report *entity.Report) (primitive.ObjectID, error)
}
