package usecase

import (
	"testing"
	"time"

	"vidstream/services/analytics/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	year2024 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	year2025 = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	year2023 = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func expectUser(repo *MockAnalyticsRepository, userID string) {
	repo.On("GetUser", mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
}

func TestYearlyViews_DefaultsToCurrentYear(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("CountUserViews", mock.Anything, "user-1", year2024, year2025).Return(int64(42), nil)

	views, err := uc.YearlyViews(ctx(), "user-1", 0)

	require.NoError(t, err)
	assert.Equal(t, 2024, views.Year)
	assert.Equal(t, int64(42), views.Views)
}

func TestYearlyViews_ExplicitYear(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("CountUserViews", mock.Anything, "user-1", year2023, year2024).Return(int64(3), nil)

	views, err := uc.YearlyViews(ctx(), "user-1", 2023)

	require.NoError(t, err)
	assert.Equal(t, 2023, views.Year)
}

func TestPickFavorite(t *testing.T) {
	assert.Nil(t, PickFavorite(nil))

	favorite := PickFavorite([]*entity.ChannelViews{
		{ChannelID: "b", Views: 4},
		{ChannelID: "c", Views: 2},
		{ChannelID: "a", Views: 4},
	})
	require.NotNil(t, favorite)
	assert.Equal(t, "a", favorite.ChannelID)
}

func TestFavoriteCreator(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("CountUserViewsByChannelBetween", mock.Anything, "user-1", year2024, year2025).Return([]*entity.ChannelViews{
		{ChannelID: "chan-1", ChannelName: "cats", Views: 7},
		{ChannelID: "chan-2", ChannelName: "dogs", Views: 2},
	}, nil)

	favorite, err := uc.FavoriteCreator(ctx(), "user-1", 0)

	require.NoError(t, err)
	require.NotNil(t, favorite.ChannelID)
	assert.Equal(t, "chan-1", *favorite.ChannelID)
	assert.Equal(t, "cats", favorite.ChannelName)
	assert.Equal(t, int64(7), favorite.Views)
	assert.Empty(t, favorite.Message)
}

func TestFavoriteCreator_NoViews(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("CountUserViewsByChannelBetween", mock.Anything, "user-1", year2024, year2025).Return([]*entity.ChannelViews{}, nil)

	favorite, err := uc.FavoriteCreator(ctx(), "user-1", 0)

	require.NoError(t, err)
	assert.Nil(t, favorite.ChannelID)
	assert.Equal(t, "No views found for this year", favorite.Message)
}

func TestYearlyReactions(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("CountUserComments", mock.Anything, "user-1", year2024, year2025).Return(int64(5), nil)
	repo.On("CountUserReactions", mock.Anything, "user-1", year2024, year2025).Return(int64(8), nil)

	reactions, err := uc.YearlyReactions(ctx(), "user-1", 2024)

	require.NoError(t, err)
	assert.Equal(t, int64(13), reactions.Total)
}

func TestAverageWatchPercentage(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("GetWatchAverage", mock.Anything, "user-1").Return(int64(3), 0.456789, nil)

	avg, err := uc.AverageWatchPercentage(ctx(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 45.68, avg.AveragePercentage)
	assert.Equal(t, int64(3), avg.Views)
}

func TestAverageWatchPercentage_NoViews(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	expectUser(repo, "user-1")
	repo.On("GetWatchAverage", mock.Anything, "user-1").Return(int64(0), 0.0, nil)

	avg, err := uc.AverageWatchPercentage(ctx(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 0.0, avg.AveragePercentage)
}

func TestStats_SoftDeletedUser(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	repo.On("GetUser", mock.Anything, "gone").Return(&entity.User{ID: "gone", IsDeleted: true}, nil)

	_, err := uc.YearlyViews(ctx(), "gone", 0)
	assert.ErrorIs(t, err, entity.ErrGone)
	_, err = uc.FavoriteCreator(ctx(), "gone", 0)
	assert.ErrorIs(t, err, entity.ErrGone)
	_, err = uc.YearlyReactions(ctx(), "gone", 0)
	assert.ErrorIs(t, err, entity.ErrGone)
	_, err = uc.AverageWatchPercentage(ctx(), "gone")
	assert.ErrorIs(t, err, entity.ErrGone)
}

func TestVideoStats(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	repo.On("GetVideo", mock.Anything, "vid-1").Return(&entity.VideoRef{ID: "vid-1", Title: "cat video"}, nil)
	repo.On("GetVideoCounts", mock.Anything, "vid-1").Return(&entity.VideoStats{VideoID: "vid-1", Views: 10, Likes: 4, Dislikes: 1, Comments: 2}, nil)

	stats, err := uc.VideoStats(ctx(), "vid-1")

	require.NoError(t, err)
	assert.Equal(t, "cat video", stats.Title)
	assert.Equal(t, int64(10), stats.Views)
}

func TestVideoStats_NotFound(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	repo.On("GetVideo", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.VideoStats(ctx(), "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestChannelInfo(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	uc := newTestUseCase(repo)
	repo.On("GetChannel", mock.Anything, "chan-1").Return(&entity.Channel{ID: "chan-1", Name: "cats", OwnerID: "owner"}, nil)
	repo.On("CountActiveSubscribers", mock.Anything, "chan-1").Return(int64(12), nil)
	repo.On("ListChannelVideoViews", mock.Anything, "chan-1").Return([]*entity.VideoViews{
		{VideoID: "v1", Views: 5},
		{VideoID: "v2", Views: 3},
	}, nil)
	repo.On("ListStrikes", mock.Anything, []string{"chan-1"}).Return([]*entity.Strike{
		{IssuedAt: testNow.Add(-100 * day), Duration: week},
		{IssuedAt: testNow.Add(-day), Duration: week},
	}, nil)

	info, err := uc.ChannelInfo(ctx(), "chan-1")

	require.NoError(t, err)
	assert.Equal(t, int64(8), info.TotalViews)
	assert.Equal(t, int64(12), info.Subscribers)
	assert.Equal(t, int64(1), info.ActiveStrikes)
	assert.Len(t, info.Videos, 2)
}
