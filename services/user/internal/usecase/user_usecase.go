package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidstream/pkg/logger"
	"vidstream/pkg/metrics"
	"vidstream/services/user/internal/entity"
	"vidstream/services/user/internal/repo/persistent"
)

// Caller identifies who is making a request, as taken from the access token.
type Caller struct {
	UserID      string
	IsModerator bool
}

// CanModify reports whether the caller may change the profile of userID.
func (c Caller) CanModify(userID string) bool {
	return c.IsModerator || c.UserID == userID
}

type UserUseCase interface {
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateUser(ctx context.Context, caller Caller, userID string, update entity.UserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, caller Caller, userID string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *userUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	defer metrics.ObserveOperation("user.get", time.Now())

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, uc.fail("user.get", err)
	}
	if user.IsDeleted {
		return nil, uc.fail("user.get", fmt.Errorf("user %s: %w", userID, entity.ErrGone))
	}
	return user, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, caller Caller, userID string, update entity.UserUpdate) (*entity.User, error) {
	defer metrics.ObserveOperation("user.update", time.Now())

	if !caller.CanModify(userID) {
		return nil, uc.fail("user.update", entity.ErrForbidden)
	}
	if update.Empty() {
		return nil, uc.fail("user.update", fmt.Errorf("nothing to update: %w", entity.ErrInvalidState))
	}

	user, err := uc.userRepo.Update(ctx, userID, update)
	if err != nil {
		return nil, uc.fail("user.update", err)
	}

	uc.logger.Info("User %s updated by %s", userID, caller.UserID)
	return user, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, caller Caller, userID string) error {
	defer metrics.ObserveOperation("user.delete", time.Now())

	if !caller.CanModify(userID) {
		return uc.fail("user.delete", entity.ErrForbidden)
	}
	if err := uc.userRepo.SoftDelete(ctx, userID); err != nil {
		return uc.fail("user.delete", err)
	}

	uc.logger.Info("User %s deleted by %s", userID, caller.UserID)
	return nil
}

func (uc *userUseCase) fail(operation string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, entity.ErrNotFound):
		kind = "not_found"
	case errors.Is(err, entity.ErrGone):
		kind = "gone"
	case errors.Is(err, entity.ErrInvalidState):
		kind = "invalid_state"
	case errors.Is(err, entity.ErrForbidden):
		kind = "forbidden"
	}
	metrics.AnalyticsOperationErrors.WithLabelValues(operation, kind).Inc()
	if kind == "internal" {
		uc.logger.Error("%s failed: %v", operation, err)
	}
	return err
}
