package usecase

import (
	"context"
	"errors"
	"testing"

	"vidstream/pkg/logger"
	"vidstream/services/user/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestCaller_CanModify(t *testing.T) {
	assert.True(t, Caller{UserID: "u1"}.CanModify("u1"))
	assert.False(t, Caller{UserID: "u1"}.CanModify("u2"))
	assert.True(t, Caller{UserID: "mod", IsModerator: true}.CanModify("u2"))
}

func TestGetUser(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	repo.On("GetByID", "u1").Return(&entity.User{ID: "u1", Username: "alice", IsBanned: true}, nil)

	user, err := uc.GetUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestGetUser_Deleted(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	repo.On("GetByID", "u1").Return(&entity.User{ID: "u1", IsDeleted: true}, nil)

	user, err := uc.GetUser(context.Background(), "u1")

	assert.ErrorIs(t, err, entity.ErrGone)
	assert.Nil(t, user)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	repo.On("GetByID", "ghost").Return(nil, entity.ErrNotFound)

	_, err := uc.GetUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateUser_Self(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	update := entity.UserUpdate{Username: strPtr("bob")}
	repo.On("Update", "u1", update).Return(&entity.User{ID: "u1", Username: "bob"}, nil)

	user, err := uc.UpdateUser(context.Background(), Caller{UserID: "u1"}, "u1", update)

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	repo.AssertExpectations(t)
}

func TestUpdateUser_ModeratorMayEditOthers(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	update := entity.UserUpdate{Email: strPtr("new@example.com")}
	repo.On("Update", "u2", update).Return(&entity.User{ID: "u2", Email: "new@example.com"}, nil)

	_, err := uc.UpdateUser(context.Background(), Caller{UserID: "mod", IsModerator: true}, "u2", update)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateUser_Forbidden(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())

	_, err := uc.UpdateUser(context.Background(), Caller{UserID: "u1"}, "u2", entity.UserUpdate{Username: strPtr("bob")})

	assert.ErrorIs(t, err, entity.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUser_EmptyUpdate(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())

	_, err := uc.UpdateUser(context.Background(), Caller{UserID: "u1"}, "u1", entity.UserUpdate{})

	assert.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestUpdateUser_RepositoryError(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	update := entity.UserUpdate{Username: strPtr("bob")}
	repo.On("Update", "u1", update).Return(nil, errors.New("deadlock detected"))

	_, err := uc.UpdateUser(context.Background(), Caller{UserID: "u1"}, "u1", update)

	assert.EqualError(t, err, "deadlock detected")
}

func TestDeleteUser(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	repo.On("SoftDelete", "u1").Return(nil)

	err := uc.DeleteUser(context.Background(), Caller{UserID: "u1"}, "u1")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteUser_AlreadyDeleted(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())
	repo.On("SoftDelete", "u1").Return(entity.ErrGone)

	err := uc.DeleteUser(context.Background(), Caller{UserID: "mod", IsModerator: true}, "u1")

	assert.ErrorIs(t, err, entity.ErrGone)
}

func TestDeleteUser_Forbidden(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewUserUseCase(repo, logger.New())

	err := uc.DeleteUser(context.Background(), Caller{UserID: "u1"}, "u2")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	repo.AssertNotCalled(t, "SoftDelete", mock.Anything)
}
