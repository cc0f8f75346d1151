package usecase

import (
	"context"
	"errors"

	"github.com/afiagithub/VitalCare-server/internal/converter"
	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"
	"github.com/afiagithub/VitalCare-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrTestNotFound = errors.New("test not found")

type TestUsecase interface {
	GetTests(ctx context.Context, filter entity.TestFilter) ([]dto.TestResponse, error)
	GetTest(ctx context.Context, id primitive.ObjectID) (*dto.TestResponse, error)
	CreateTest(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	UpdateTest(ctx context.Context, id primitive.ObjectID, req *dto.UpdateTestRequest) error
	UpdateSlots(ctx context.Context, id primitive.ObjectID, req *dto.UpdateSlotsRequest) error
	DeleteTest(ctx context.Context, id primitive.ObjectID) error
	CountTests(ctx context.Context) (int64, error)
}

type testUsecase struct {
	log      *logrus.Logger
	testRepo repository.TestRepository
}

func NewTestUsecase(log *logrus.Logger, testRepo repository.TestRepository) TestUsecase {
	return &testUsecase{
		log:      log,
		testRepo: testRepo,
	}
}

func (u *testUsecase) GetTests(ctx context.Context, filter entity.TestFilter) ([]dto.TestResponse, error) {
	tests, err := u.testRepo.Find(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find tests: %+v", err)
		return nil, err
	}
	return converter.TestsToResponses(tests), nil
}

func (u *testUsecase) GetTest(ctx context.Context, id primitive.ObjectID) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test %s: %+v", id.Hex(), err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	return converter.TestToResponse(test), nil
}

func (u *testUsecase) CreateTest(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	test := &entity.Test{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
		Cost:        req.Cost,
		Slots:       req.Slots,
	}
	if _, err := test.SlotCount(); err != nil {
		return nil, err
	}

	id, err := u.testRepo.Insert(ctx, test)
	if err != nil {
		u.log.Warnf("Failed to insert test: %+v", err)
		return nil, err
	}
	test.ID = id

	u.log.Infof("Test created: id=%s, title=%s", id.Hex(), test.Title)
	return converter.TestToResponse(test), nil
}

func (u *testUsecase) UpdateTest(ctx context.Context, id primitive.ObjectID, req *dto.UpdateTestRequest) error {
	test := &entity.Test{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
		Cost:        req.Cost,
		Slots:       req.Slots,
	}
	if _, err := test.SlotCount(); err != nil {
		return err
	}

	matched, err := u.testRepo.UpdateCatalog(ctx, id, test)
	if err != nil {
		u.log.Warnf("Failed to update test %s: %+v", id.Hex(), err)
		return err
	}
	if matched == 0 {
		return ErrTestNotFound
	}
	return nil
}

// UpdateSlots is the narrow booking-time path: the collaborator computes
// the new remaining count and sends only that.
func (u *testUsecase) UpdateSlots(ctx context.Context, id primitive.ObjectID, req *dto.UpdateSlotsRequest) error {
	probe := entity.Test{Slots: req.Slots}
	if _, err := probe.SlotCount(); err != nil {
		return err
	}

	matched, err := u.testRepo.UpdateSlots(ctx, id, req.Slots)
	if err != nil {
		u.log.Warnf("Failed to update slots for test %s: %+v", id.Hex(), err)
		return err
	}
	if matched == 0 {
		return ErrTestNotFound
	}
	return nil
}

func (u *testUsecase) DeleteTest(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := u.testRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete test %s: %+v", id.Hex(), err)
		return err
	}
	if deleted == 0 {
		return ErrTestNotFound
	}

	u.log.Infof("Test deleted: id=%s", id.Hex())
	return nil
}

func (u *testUsecase) CountTests(ctx context.Context) (int64, error) {
	count, err := u.testRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count tests: %+v", err)
		return 0, err
	}
	return count, nil
}
