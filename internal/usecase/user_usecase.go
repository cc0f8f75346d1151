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

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpsertProfile(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) error
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error
	BlockUser(ctx context.Context, id primitive.ObjectID) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsBlocked(ctx context.Context, email string) (bool, error)
}

type userUsecase struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		log:      log,
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	responses := converter.UsersToResponses(users)
	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

// GetUserByEmail returns nil without an error when no record matches; the
// client treats a null profile as "not signed up yet".
func (u *userUsecase) GetUserByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUserByID(ctx context.Context, id primitive.ObjectID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id.Hex(), err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// CreateUser registers an account on first sign-in. A duplicate email or
// external auth id yields ErrUserExists and no insert.
func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	existing, err = u.userRepo.FindByExternalID(ctx, req.ExternalID)
	if err != nil {
		u.log.Warnf("Failed to check external id uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &entity.User{
		Name:       req.Name,
		Email:      req.Email,
		ExternalID: req.ExternalID,
		Photo:      req.Photo,
		BloodType:  req.BloodType,
		District:   req.District,
		Upazila:    req.Upazila,
	}
	user.Normalize()

	id, err := u.userRepo.Insert(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to insert user: %+v", err)
		return nil, err
	}
	user.ID = id

	u.log.Infof("User created: id=%s, email=%s", id.Hex(), user.Email)
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpsertProfile(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) error {
	status := entity.UserStatus(req.Status)
	if status == "" {
		status = entity.StatusActive
	}

	user := &entity.User{
		Name:       req.Name,
		Email:      req.Email,
		ExternalID: req.ExternalID,
		Photo:      req.Photo,
		BloodType:  req.BloodType,
		District:   req.District,
		Upazila:    req.Upazila,
		Status:     status,
	}

	if err := u.userRepo.UpsertProfile(ctx, id, user); err != nil {
		u.log.Warnf("Failed to upsert user %s: %+v", id.Hex(), err)
		return err
	}
	return nil
}

func (u *userUsecase) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error {
	matched, err := u.userRepo.SetRole(ctx, id, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to promote user %s: %+v", id.Hex(), err)
		return err
	}
	if matched == 0 {
		return ErrUserNotFound
	}

	u.log.Infof("User promoted to admin: id=%s", id.Hex())
	return nil
}

func (u *userUsecase) BlockUser(ctx context.Context, id primitive.ObjectID) error {
	matched, err := u.userRepo.SetStatus(ctx, id, entity.StatusBlocked)
	if err != nil {
		u.log.Warnf("Failed to block user %s: %+v", id.Hex(), err)
		return err
	}
	if matched == 0 {
		return ErrUserNotFound
	}

	u.log.Infof("User blocked: id=%s", id.Hex())
	return nil
}

// IsAdmin reports whether the user record behind the email carries the
// elevated role. An absent record is simply not an admin.
func (u *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to load user for admin check: %+v", err)
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

// IsBlocked is the weaker pre-emptive check clients use before sign-in.
// It is not an authorization boundary.
func (u *userUsecase) IsBlocked(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to load user for block check: %+v", err)
		return false, err
	}
	return user != nil && user.IsBlocked(), nil
}
