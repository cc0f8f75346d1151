package usecase

import (
	"context"
	"testing"

	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBannerRepo struct {
	banners []entity.Banner
}

func (f *fakeBannerRepo) FindAll(ctx context.Context) ([]entity.Banner, error) {
	return f.banners, nil
}

func (f *fakeBannerRepo) FindActive(ctx context.Context) (*entity.Banner, error) {
	for i := range f.banners {
		if f.banners[i].IsActive {
			return &f.banners[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBannerRepo) FindActiveByCoupon(ctx context.Context, couponCode string) (*entity.Banner, error) {
	for i := range f.banners {
		if f.banners[i].IsActive && f.banners[i].CouponCode == couponCode {
			return &f.banners[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBannerRepo) Insert(ctx context.Context, banner *entity.Banner) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	banner.ID = id
	f.banners = append(f.banners, *banner)
	return id, nil
}

func (f *fakeBannerRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.banners {
		if f.banners[i].ID == id {
			f.banners = append(f.banners[:i], f.banners[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBannerRepo) DeactivateAll(ctx context.Context) (int64, error) {
	var n int64
	for i := range f.banners {
		if f.banners[i].IsActive {
			f.banners[i].IsActive = false
			n++
		}
	}
	return n, nil
}

func (f *fakeBannerRepo) Activate(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.banners {
		if f.banners[i].ID == id {
			f.banners[i].IsActive = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBannerRepo) activeCount() int {
	n := 0
	for _, b := range f.banners {
		if b.IsActive {
			n++
		}
	}
	return n
}

func TestActivateBanner(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	repo := &fakeBannerRepo{banners: []entity.Banner{
		{ID: first, Name: "summer", IsActive: true},
		{ID: second, Name: "winter", IsActive: false},
	}}
	uc := NewBannerUsecase(testLogger(), fakeTransactor{}, repo)

	require.NoError(t, uc.ActivateBanner(context.Background(), second))

	assert.Equal(t, 1, repo.activeCount(), "exactly one banner active")
	assert.False(t, repo.banners[0].IsActive)
	assert.True(t, repo.banners[1].IsActive)

	// A second activation moves the flag, never accumulates it.
	require.NoError(t, uc.ActivateBanner(context.Background(), first))
	assert.Equal(t, 1, repo.activeCount())
	assert.True(t, repo.banners[0].IsActive)
	assert.False(t, repo.banners[1].IsActive)
}

func TestActivateBanner_Missing(t *testing.T) {
	repo := &fakeBannerRepo{banners: []entity.Banner{
		{ID: primitive.NewObjectID(), Name: "summer", IsActive: true},
	}}
	uc := NewBannerUsecase(testLogger(), fakeTransactor{}, repo)

	err := uc.ActivateBanner(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrBannerNotFound)
}

func TestGetActiveCoupon(t *testing.T) {
	repo := &fakeBannerRepo{banners: []entity.Banner{
		{ID: primitive.NewObjectID(), CouponCode: "SAVE20", IsActive: true},
		{ID: primitive.NewObjectID(), CouponCode: "OLD10", IsActive: false},
	}}
	uc := NewBannerUsecase(testLogger(), fakeTransactor{}, repo)

	tests := []struct {
		name   string
		coupon string
		found  bool
	}{
		{name: "active coupon resolves", coupon: "SAVE20", found: true},
		{name: "inactive coupon does not apply", coupon: "OLD10", found: false},
		{name: "unknown coupon", coupon: "NOPE", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.GetActiveCoupon(context.Background(), tt.coupon)
			require.NoError(t, err)
			if tt.found {
				require.NotNil(t, resp)
				assert.Equal(t, tt.coupon, resp.CouponCode)
			} else {
				assert.Nil(t, resp)
			}
		})
	}
}

func TestDeleteBanner_Missing(t *testing.T) {
	uc := NewBannerUsecase(testLogger(), fakeTransactor{}, &fakeBannerRepo{})

	err := uc.DeleteBanner(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrBannerNotFound)
}
