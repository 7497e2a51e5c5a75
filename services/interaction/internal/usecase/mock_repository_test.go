package usecase

import (
	"context"
	"time"

	"vidstream/services/interaction/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) GetActor(ctx context.Context, userID string) (*entity.Actor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}

func (m *MockInteractionRepository) GetVideo(ctx context.Context, videoID string) (*entity.VideoRef, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoRef), args.Error(1)
}

func (m *MockInteractionRepository) ChannelExists(ctx context.Context, channelID string) (bool, error) {
	args := m.Called(ctx, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) UpsertView(ctx context.Context, view *entity.View) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockInteractionRepository) CreateComment(ctx context.Context, userID, videoID, text string, at time.Time) (*entity.Comment, error) {
	args := m.Called(ctx, userID, videoID, text, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockInteractionRepository) CreateReport(ctx context.Context, reporterID, videoID, reason string, at time.Time) (*entity.Report, error) {
	args := m.Called(ctx, reporterID, videoID, reason, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockInteractionRepository) Subscribe(ctx context.Context, userID, channelID string, at time.Time) error {
	args := m.Called(ctx, userID, channelID, at)
	return args.Error(0)
}

func (m *MockInteractionRepository) Unsubscribe(ctx context.Context, userID, channelID string) error {
	args := m.Called(ctx, userID, channelID)
	return args.Error(0)
}

type MockReportThrottle struct {
	mock.Mock
}

func (m *MockReportThrottle) Allow(ctx context.Context, reporterID, videoID string) (bool, error) {
	args := m.Called(ctx, reporterID, videoID)
	return args.Bool(0), args.Error(1)
}
