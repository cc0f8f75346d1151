package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/afiagithub/VitalCare-server/internal/delivery/dto"
	"github.com/afiagithub/VitalCare-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	users   []entity.User
	inserts int
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ExternalID == externalID {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	f.inserts++
	id := primitive.NewObjectID()
	user.ID = id
	f.users = append(f.users, *user)
	return id, nil
}

func (f *fakeUserRepo) UpsertProfile(ctx context.Context, id primitive.ObjectID, user *entity.User) error {
	for i := range f.users {
		if f.users[i].ID == id {
			user.ID = id
			user.Role = f.users[i].Role
			f.users[i] = *user
			return nil
		}
	}
	user.ID = id
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (int64, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status entity.UserStatus) (int64, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func TestCreateUser(t *testing.T) {
	existing := entity.User{
		ID:         primitive.NewObjectID(),
		Name:       "Existing",
		Email:      "existing@example.com",
		ExternalID: "ext-1",
	}

	tests := []struct {
		name        string
		req         dto.CreateUserRequest
		wantErr     error
		wantInserts int
	}{
		{
			name: "new user is inserted with defaults",
			req: dto.CreateUserRequest{
				Name:       "New User",
				Email:      "new@example.com",
				ExternalID: "ext-2",
			},
			wantInserts: 1,
		},
		{
			name: "duplicate email performs no insert",
			req: dto.CreateUserRequest{
				Name:       "Another",
				Email:      "existing@example.com",
				ExternalID: "ext-3",
			},
			wantErr: ErrUserExists,
		},
		{
			name: "duplicate external id performs no insert",
			req: dto.CreateUserRequest{
				Name:       "Another",
				Email:      "another@example.com",
				ExternalID: "ext-1",
			},
			wantErr: ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{users: []entity.User{existing}}
			uc := NewUserUsecase(testLogger(), repo)

			resp, err := uc.CreateUser(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.inserts, "duplicate must not insert")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantInserts, repo.inserts)
			assert.Equal(t, string(entity.RoleUser), resp.Role)
			assert.Equal(t, string(entity.StatusActive), resp.Status)
		})
	}
}

func TestGetUserByEmail_MissingIsNil(t *testing.T) {
	uc := NewUserUsecase(testLogger(), &fakeUserRepo{})

	resp, err := uc.GetUserByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetUserByID_Missing(t *testing.T) {
	uc := NewUserUsecase(testLogger(), &fakeUserRepo{})

	_, err := uc.GetUserByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []entity.User{
		{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: entity.RoleAdmin},
		{ID: primitive.NewObjectID(), Email: "user@example.com", Role: entity.RoleUser},
	}}
	uc := NewUserUsecase(testLogger(), repo)

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "admin role", email: "admin@example.com", want: true},
		{name: "regular role", email: "user@example.com", want: false},
		{name: "absent user", email: "ghost@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.IsAdmin(context.Background(), tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromoteAndBlock(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeUserRepo{users: []entity.User{
		{ID: id, Email: "user@example.com", Role: entity.RoleUser, Status: entity.StatusActive},
	}}
	uc := NewUserUsecase(testLogger(), repo)

	require.NoError(t, uc.PromoteToAdmin(context.Background(), id))
	assert.Equal(t, entity.RoleAdmin, repo.users[0].Role)

	require.NoError(t, uc.BlockUser(context.Background(), id))
	assert.Equal(t, entity.StatusBlocked, repo.users[0].Status)

	blocked, err := uc.IsBlocked(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.True(t, blocked)

	assert.ErrorIs(t, uc.PromoteToAdmin(context.Background(), primitive.NewObjectID()), ErrUserNotFound)
	assert.ErrorIs(t, uc.BlockUser(context.Background(), primitive.NewObjectID()), ErrUserNotFound)
}
