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

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReportNotPending    = errors.New("report is not pending")
)

type ReservationUsecase interface {
	GetReservationsForUser(ctx context.Context, email string, includeDelivered bool) (*dto.ReservationListResponse, error)
	SearchReservations(ctx context.Context, email, testID string) (*dto.ReservationListResponse, error)
	GetReservationsByTest(ctx context.Context, testID string) (*dto.ReservationListResponse, error)
	GetReservation(ctx context.Context, id primitive.ObjectID) (*dto.ReservationResponse, error)
	CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	DeleteReservation(ctx context.Context, id primitive.ObjectID) error
	CancelReservation(ctx context.Context, testID primitive.ObjectID, email string) (*dto.CancelReservationResponse, error)
	MarkDelivered(ctx context.Context, id primitive.ObjectID) error
}

type reservationUsecase struct {
	log             *logrus.Logger
	transactor      database.Transactor
	reservationRepo repository.ReservationRepository
	testRepo        repository.TestRepository
}

func NewReservationUsecase(
	log *logrus.Logger,
	transactor database.Transactor,
	reservationRepo repository.ReservationRepository,
	testRepo repository.TestRepository,
) ReservationUsecase {
	return &reservationUsecase{
		log:             log,
		transactor:      transactor,
		reservationRepo: reservationRepo,
		testRepo:        testRepo,
	}
}

func (u *reservationUsecase) GetReservationsForUser(ctx context.Context, email string, includeDelivered bool) (*dto.ReservationListResponse, error) {
	reservations, err := u.reservationRepo.FindByEmail(ctx, email, !includeDelivered)
	if err != nil {
		u.log.Warnf("Failed to find reservations for %s: %+v", email, err)
		return nil, err
	}
	return listResponse(reservations), nil
}

func (u *reservationUsecase) SearchReservations(ctx context.Context, email, testID string) (*dto.ReservationListResponse, error) {
	reservations, err := u.reservationRepo.FindByEmailAndTest(ctx, email, testID)
	if err != nil {
		u.log.Warnf("Failed to search reservations: %+v", err)
		return nil, err
	}
	return listResponse(reservations), nil
}

func (u *reservationUsecase) GetReservationsByTest(ctx context.Context, testID string) (*dto.ReservationListResponse, error) {
	reservations, err := u.reservationRepo.FindByTestID(ctx, testID)
	if err != nil {
		u.log.Warnf("Failed to find reservations for test %s: %+v", testID, err)
		return nil, err
	}
	return listResponse(reservations), nil
}

func (u *reservationUsecase) GetReservation(ctx context.Context, id primitive.ObjectID) (*dto.ReservationResponse, error) {
	reservation, err := u.reservationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find reservation %s: %+v", id.Hex(), err)
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	return converter.ReservationToResponse(reservation), nil
}

func (u *reservationUsecase) CreateReservation(ctx context.Context, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	reservation := &entity.Reservation{
		TestID: req.TestID,
		Email:  req.Email,
		Title:  req.Title,
		Price:  req.Price,
		Date:   req.Date,
		Report: entity.ReportPending,
	}

	id, err := u.reservationRepo.Insert(ctx, reservation)
	if err != nil {
		u.log.Warnf("Failed to insert reservation: %+v", err)
		return nil, err
	}
	reservation.ID = id

	u.log.Infof("Reservation created: id=%s, test=%s, email=%s", id.Hex(), req.TestID, req.Email)
	return converter.ReservationToResponse(reservation), nil
}

func (u *reservationUsecase) DeleteReservation(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := u.reservationRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete reservation %s: %+v", id.Hex(), err)
		return err
	}
	if deleted == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// CancelReservation restores the test's slot and removes the caller's
// reservation for it, inside one transaction so neither half can be
// observed without the other.
func (u *reservationUsecase) CancelReservation(ctx context.Context, testID primitive.ObjectID, email string) (*dto.CancelReservationResponse, error) {
	var result dto.CancelReservationResponse

	err := u.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		test, err := u.testRepo.FindByID(txCtx, testID)
		if err != nil {
			return err
		}
		if test == nil {
			return ErrTestNotFound
		}

		count, err := test.SlotCount()
		if err != nil {
			return err
		}
		newSlots := entity.FormatSlots(count + 1)

		if _, err := u.testRepo.UpdateSlots(txCtx, testID, newSlots); err != nil {
			return err
		}

		removed, err := u.reservationRepo.DeleteByEmailAndTest(txCtx, email, testID.Hex())
		if err != nil {
			return err
		}

		result = dto.CancelReservationResponse{
			TestID:  testID.Hex(),
			Slots:   newSlots,
			Removed: removed,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTestNotFound) {
			u.log.Warnf("Failed to cancel reservation for test %s: %+v", testID.Hex(), err)
		}
		return nil, err
	}

	u.log.Infof("Reservation cancelled: test=%s, email=%s, slots=%s", testID.Hex(), email, result.Slots)
	return &result, nil
}

// MarkDelivered flips a reservation's report from pending to delivered.
// The transition is one-way; a delivered report stays delivered.
func (u *reservationUsecase) MarkDelivered(ctx context.Context, id primitive.ObjectID) error {
	modified, err := u.reservationRepo.MarkDelivered(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to mark reservation %s delivered: %+v", id.Hex(), err)
		return err
	}
	if modified == 0 {
		reservation, err := u.reservationRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return ErrReservationNotFound
		}
		return ErrReportNotPending
	}

	u.log.Infof("Report delivered: reservation=%s", id.Hex())
	return nil
}

func listResponse(reservations []entity.Reservation) *dto.ReservationListResponse {
	responses := converter.ReservationsToResponses(reservations)
	return &dto.ReservationListResponse{
		Reservations: responses,
		Total:        len(responses),
	}
}
