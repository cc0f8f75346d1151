package usecase

import (
	"context"
	"errors"

	"github.com/afiagithub/VitalCare-server/internal/converter"
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	"github.com/afiagithub/VitalCare-server/internal/domain/repository"
	"github.com/afiagithub/VitalCare-server/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrBannerNotFound = errors.New("banner not found")

type BannerUsecase interface {
	GetAllBanners(ctx context.Context) (*dto.BannerListResponse, error)
	GetActiveBanner(ctx context.Context) (*dto.BannerResponse, error)
	GetActiveCoupon(ctx context.Context, couponCode string) (*dto.BannerResponse, error)
	CreateBanner(ctx context.Context, req *dto.CreateBannerRequest) (*dto.BannerResponse, error)
	DeleteBanner(ctx context.Context, id primitive.ObjectID) error
	ActivateBanner(ctx context.Context, id primitive.ObjectID) error
}

type bannerUsecase struct {
	log        *logrus.Logger
	transactor database.Transactor
	bannerRepo repository.BannerRepository
}

func NewBannerUsecase(log *logrus.Logger, transactor database.Transactor, bannerRepo repository.BannerRepository) BannerUsecase {
	return &bannerUsecase{
		log:        log,
		transactor: transactor,
		bannerRepo: bannerRepo,
	}
}

func (u *bannerUsecase) GetAllBanners(ctx context.Context) (*dto.BannerListResponse, error) {
	banners, err := u.bannerRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find banners: %+v", err)
		return nil, err
	}

	responses := converter.BannersToResponses(banners)
	return &dto.BannerListResponse{
		Banners: responses,
		Total:   len(responses),
	}, nil
}

// GetActiveBanner returns nil when no banner is active; the storefront
// renders nothing in that case.
func (u *bannerUsecase) GetActiveBanner(ctx context.Context) (*dto.BannerResponse, error) {
	banner, err := u.bannerRepo.FindActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to find active banner: %+v", err)
		return nil, err
	}
	return converter.BannerToResponse(banner), nil
}

// GetActiveCoupon resolves a coupon code against the active banner only;
// codes on inactive banners do not apply.
func (u *bannerUsecase) GetActiveCoupon(ctx context.Context, couponCode string) (*dto.BannerResponse, error) {
	banner, err := u.bannerRepo.FindActiveByCoupon(ctx, couponCode)
	if err != nil {
		u.log.Warnf("Failed to find coupon %s: %+v", couponCode, err)
		return nil, err
	}
	return converter.BannerToResponse(banner), nil
}

func (u *bannerUsecase) CreateBanner(ctx context.Context, req *dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	banner := &entity.Banner{
		Name:       req.Name,
		Image:      req.Image,
		Title:      req.Title,
		Text:       req.Text,
		CouponCode: req.CouponCode,
		Rate:       req.Rate,
		IsActive:   req.IsActive,
	}

	id, err := u.bannerRepo.Insert(ctx, banner)
	if err != nil {
		u.log.Warnf("Failed to insert banner: %+v", err)
		return nil, err
	}
	banner.ID = id

	u.log.Infof("Banner created: id=%s, name=%s", id.Hex(), banner.Name)
	return converter.BannerToResponse(banner), nil
}

func (u *bannerUsecase) DeleteBanner(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := u.bannerRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete banner %s: %+v", id.Hex(), err)
		return err
	}
	if deleted == 0 {
		return ErrBannerNotFound
	}
	return nil
}

// ActivateBanner makes exactly one banner active: everything is
// deactivated and the target re-activated inside one transaction.
func (u *bannerUsecase) ActivateBanner(ctx context.Context, id primitive.ObjectID) error {
	err := u.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := u.bannerRepo.DeactivateAll(txCtx); err != nil {
			return err
		}

		matched, err := u.bannerRepo.Activate(txCtx, id)
		if err != nil {
			return err
		}
		if matched == 0 {
			return ErrBannerNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBannerNotFound) {
			u.log.Warnf("Failed to activate banner %s: %+v", id.Hex(), err)
		}
		return err
	}

	u.log.Infof("Banner activated: id=%s", id.Hex())
	return nil
}
