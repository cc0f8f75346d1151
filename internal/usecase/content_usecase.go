package usecase

import (
	"context"
	"errors"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	"github.com/afiagithub/VitalCare-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrBlogNotFound = errors.New("blog not found")

// ContentUsecase serves the read-mostly catalog/content surface: doctors,
// blogs, recommendations, and the district/upazila reference lists.
type ContentUsecase interface {
	Districts(ctx context.Context) ([]entity.District, error)
	Upazilas(ctx context.Context) ([]entity.Upazila, error)
	Doctors(ctx context.Context) ([]entity.Doctor, error)
	Blogs(ctx context.Context) ([]entity.Blog, error)
	BlogByID(ctx context.Context, id primitive.ObjectID) (*entity.Blog, error)
	Recommendations(ctx context.Context) ([]entity.Recommendation, error)
}

type contentUsecase struct {
	log         *logrus.Logger
	lookupRepo  repository.LookupRepository
	contentRepo repository.ContentRepository
}

func NewContentUsecase(log *logrus.Logger, lookupRepo repository.LookupRepository, contentRepo repository.ContentRepository) ContentUsecase {
	return &contentUsecase{
		log:         log,
		lookupRepo:  lookupRepo,
		contentRepo: contentRepo,
	}
}

func (u *contentUsecase) Districts(ctx context.Context) ([]entity.District, error) {
	districts, err := u.lookupRepo.Districts(ctx)
	if err != nil {
		u.log.Warnf("Failed to find districts: %+v", err)
		return nil, err
	}
	return districts, nil
}

func (u *contentUsecase) Upazilas(ctx context.Context) ([]entity.Upazila, error) {
	upazilas, err := u.lookupRepo.Upazilas(ctx)
	if err != nil {
		u.log.Warnf("Failed to find upazilas: %+v", err)
		return nil, err
	}
	return upazilas, nil
}

func (u *contentUsecase) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := u.contentRepo.Doctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return doctors, nil
}

func (u *contentUsecase) Blogs(ctx context.Context) ([]entity.Blog, error) {
	blogs, err := u.contentRepo.Blogs(ctx)
	if err != nil {
		u.log.Warnf("Failed to find blogs: %+v", err)
		return nil, err
	}
	return blogs, nil
}

func (u *contentUsecase) BlogByID(ctx context.Context, id primitive.ObjectID) (*entity.Blog, error) {
	blog, err := u.contentRepo.BlogByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find blog %s: %+v", id.Hex(), err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

func (u *contentUsecase) Recommendations(ctx context.Context) ([]entity.Recommendation, error) {
	recommendations, err := u.contentRepo.Recommendations(ctx)
	if err != nil {
		u.log.Warnf("Failed to find recommendations: %+v", err)
		return nil, err
	}
	return recommendations, nil
}
