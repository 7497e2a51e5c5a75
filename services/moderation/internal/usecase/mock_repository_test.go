package usecase

import (
	"context"
	"time"

	"vidstream/pkg/queue"
	"vidstream/services/moderation/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) IssueStrike(ctx context.Context, channelID string, videoID *string, issuedAt time.Time, duration time.Duration) (*entity.StrikeOutcome, error) {
	args := m.Called(ctx, channelID, videoID, issuedAt, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StrikeOutcome), args.Error(1)
}

func (m *MockModerationRepository) ResolveReport(ctx context.Context, reportID string) (*entity.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockModerationRepository) BanUser(ctx context.Context, userID string) (*entity.BannedUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BannedUser), args.Error(1)
}

func (m *MockModerationRepository) ListReports(ctx context.Context, resolved *bool, skip, limit int) ([]*entity.Report, error) {
	args := m.Called(ctx, resolved, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Report), args.Error(1)
}

func (m *MockModerationRepository) DeactivateVideo(ctx context.Context, videoID string) (*entity.VideoState, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoState), args.Error(1)
}

func (m *MockModerationRepository) DemonetizeVideo(ctx context.Context, videoID string) (*entity.VideoState, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoState), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishModerationEvent(ctx context.Context, event queue.ModerationEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
