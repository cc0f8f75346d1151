package repository

import (
	"context"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
)

// LookupRepository serves the static district/upazila reference data.
type LookupRepository interface {
	Districts(ctx context.Context) ([]entity.District, error)
	Upazilas(ctx context.Context) ([]entity.Upazila, error)
}
