package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidstream/pkg/clock"
	"vidstream/pkg/logger"
	"vidstream/pkg/metrics"
	"vidstream/services/analytics/internal/entity"
	"vidstream/services/analytics/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

// AnalyticsUseCase derives rankings, revenue, risk and credibility from the
// stored facts. Every call recomputes from scratch and never writes.
type AnalyticsUseCase interface {
	Recommend(ctx context.Context, userID string, limit int) ([]*entity.VideoRef, error)
	ChannelRevenue(ctx context.Context, channelID string) (*entity.ChannelRevenue, error)
	ActiveStrikeCount(ctx context.Context, channelID string) (int64, error)
	ChannelRiskProfile(ctx context.Context, channelID string, minReports int64) (*entity.ChannelRiskProfile, error)
	ChannelsRiskReport(ctx context.Context, minReports int64, limit int) ([]*entity.ChannelRiskProfile, error)
	UserCredibility(ctx context.Context, userID string) (*entity.Credibility, error)
	ProblematicReporters(ctx context.Context, minReports int64, skip, limit int) ([]*entity.ProblematicReporter, error)

	YearlyViews(ctx context.Context, userID string, year int) (*entity.YearlyViews, error)
	FavoriteCreator(ctx context.Context, userID string, year int) (*entity.FavoriteCreator, error)
	YearlyReactions(ctx context.Context, userID string, year int) (*entity.YearlyReactions, error)
	AverageWatchPercentage(ctx context.Context, userID string) (*entity.AverageWatch, error)
	VideoStats(ctx context.Context, videoID string) (*entity.VideoStats, error)
	ChannelInfo(ctx context.Context, channelID string) (*entity.ChannelInfo, error)
}

type analyticsUseCase struct {
	analyticsRepo persistent.AnalyticsRepository
	clock         clock.Clock
	logger        *logger.Logger
}

func NewAnalyticsUseCase(analyticsRepo persistent.AnalyticsRepository, clk clock.Clock, logger *logger.Logger) AnalyticsUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	return &analyticsUseCase{
		analyticsRepo: analyticsRepo,
		clock:         clk,
		logger:        logger,
	}
}

// activeUser loads the subject of a per-user analytic, rejecting missing and
// soft-deleted users. Banned users pass.
func (uc *analyticsUseCase) activeUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.analyticsRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	if user.IsDeleted {
		return nil, fmt.Errorf("user %s: %w", userID, entity.ErrGone)
	}
	return user, nil
}

func (uc *analyticsUseCase) channel(ctx context.Context, channelID string) (*entity.Channel, error) {
	channel, err := uc.analyticsRepo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", channelID, err)
	}
	return channel, nil
}

// fail counts the error against operation and logs it unless it is an
// expected lookup miss.
func (uc *analyticsUseCase) fail(operation string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, entity.ErrNotFound):
		kind = "not_found"
	case errors.Is(err, entity.ErrGone):
		kind = "gone"
	}
	metrics.AnalyticsOperationErrors.WithLabelValues(operation, kind).Inc()
	if kind == "internal" {
		uc.logger.Error("%s failed: %v", operation, err)
	}
	return err
}

func (uc *analyticsUseCase) yearBounds(year int) (int, time.Time, time.Time) {
	if year == 0 {
		year = uc.clock.Now().Year()
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return year, from, from.AddDate(1, 0, 0)
}

var hundred = decimal.NewFromInt(100)

// Percentage is part/total*100 rounded half away from zero to 2 decimals.
// A zero total yields 0.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		Round(2).
		InexactFloat64()
}
