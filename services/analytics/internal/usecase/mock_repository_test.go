package usecase

import (
	"context"
	"time"

	"vidstream/services/analytics/internal/entity"
	"vidstream/services/analytics/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

var _ persistent.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

func ctx() context.Context {
	return context.Background()
}

func (m *MockAnalyticsRepository) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAnalyticsRepository) GetChannel(ctx context.Context, channelID string) (*entity.Channel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Channel), args.Error(1)
}

func (m *MockAnalyticsRepository) GetVideo(ctx context.Context, videoID string) (*entity.VideoRef, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoRef), args.Error(1)
}

func (m *MockAnalyticsRepository) ListCatalog(ctx context.Context) ([]*entity.VideoRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoRef), args.Error(1)
}

func (m *MockAnalyticsRepository) CountViewsByVideo(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockAnalyticsRepository) CountUserViewsByChannel(ctx context.Context, userID string) (map[string]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockAnalyticsRepository) ListActiveSubscriptions(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsRepository) ListPaidPeriods(ctx context.Context, channelID string) ([]*entity.PaidPeriod, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PaidPeriod), args.Error(1)
}

func (m *MockAnalyticsRepository) ListStrikes(ctx context.Context, channelIDs ...string) ([]*entity.Strike, error) {
	args := m.Called(ctx, channelIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Strike), args.Error(1)
}

func (m *MockAnalyticsRepository) GetChannelReportStats(ctx context.Context, channelID string) (*entity.ReportStats, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReportStats), args.Error(1)
}

func (m *MockAnalyticsRepository) ListChannelReportStats(ctx context.Context, minReports int64) ([]*entity.ReportStats, error) {
	args := m.Called(ctx, minReports)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ReportStats), args.Error(1)
}

func (m *MockAnalyticsRepository) GetReporterStats(ctx context.Context, userID string) (int64, int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnalyticsRepository) ListProblematicReporters(ctx context.Context, minReports int64, skip, limit int) ([]*entity.ProblematicReporter, error) {
	args := m.Called(ctx, minReports, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProblematicReporter), args.Error(1)
}

func (m *MockAnalyticsRepository) CountUserViews(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) CountUserViewsByChannelBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.ChannelViews, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ChannelViews), args.Error(1)
}

func (m *MockAnalyticsRepository) CountUserComments(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) CountUserReactions(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) GetWatchAverage(ctx context.Context, userID string) (int64, float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *MockAnalyticsRepository) GetVideoCounts(ctx context.Context, videoID string) (*entity.VideoStats, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoStats), args.Error(1)
}

func (m *MockAnalyticsRepository) CountActiveSubscribers(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) ListChannelVideoViews(ctx context.Context, channelID string) ([]*entity.VideoViews, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoViews), args.Error(1)
}
