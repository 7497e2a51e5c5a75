package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vidstream/pkg/metrics"
	"vidstream/services/analytics/internal/entity"

	"github.com/shopspring/decimal"
)

const noViewsThisYear = "No views found for this year"

func (uc *analyticsUseCase) YearlyViews(ctx context.Context, userID string, year int) (*entity.YearlyViews, error) {
	const op = "yearly_views"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, uc.fail(op, err)
	}

	year, from, to := uc.yearBounds(year)
	views, err := uc.analyticsRepo.CountUserViews(ctx, userID, from, to)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count views: %w", err))
	}
	return &entity.YearlyViews{UserID: userID, Year: year, Views: views}, nil
}

func (uc *analyticsUseCase) FavoriteCreator(ctx context.Context, userID string, year int) (*entity.FavoriteCreator, error) {
	const op = "favorite_creator"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, uc.fail(op, err)
	}

	year, from, to := uc.yearBounds(year)
	channels, err := uc.analyticsRepo.CountUserViewsByChannelBetween(ctx, userID, from, to)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count views per channel: %w", err))
	}

	result := &entity.FavoriteCreator{UserID: userID, Year: year}
	favorite := PickFavorite(channels)
	if favorite == nil {
		result.Message = noViewsThisYear
		return result, nil
	}
	result.ChannelID = &favorite.ChannelID
	result.ChannelName = favorite.ChannelName
	result.Views = favorite.Views
	return result, nil
}

// PickFavorite returns the channel with the most views, the lowest channel id
// on a tie, or nil when nothing was watched.
func PickFavorite(channels []*entity.ChannelViews) *entity.ChannelViews {
	var best *entity.ChannelViews
	for _, ch := range channels {
		if ch.Views <= 0 {
			continue
		}
		if best == nil || ch.Views > best.Views ||
			(ch.Views == best.Views && strings.Compare(ch.ChannelID, best.ChannelID) < 0) {
			best = ch
		}
	}
	return best
}

func (uc *analyticsUseCase) YearlyReactions(ctx context.Context, userID string, year int) (*entity.YearlyReactions, error) {
	const op = "yearly_reactions"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, uc.fail(op, err)
	}

	year, from, to := uc.yearBounds(year)
	comments, err := uc.analyticsRepo.CountUserComments(ctx, userID, from, to)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count comments: %w", err))
	}
	reactions, err := uc.analyticsRepo.CountUserReactions(ctx, userID, from, to)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count reactions: %w", err))
	}

	return &entity.YearlyReactions{
		UserID:    userID,
		Year:      year,
		Comments:  comments,
		Reactions: reactions,
		Total:     comments + reactions,
	}, nil
}

func (uc *analyticsUseCase) AverageWatchPercentage(ctx context.Context, userID string) (*entity.AverageWatch, error) {
	const op = "average_watch_percentage"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, uc.fail(op, err)
	}

	views, average, err := uc.analyticsRepo.GetWatchAverage(ctx, userID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to average watch time: %w", err))
	}

	result := &entity.AverageWatch{UserID: userID, Views: views}
	if views > 0 {
		result.AveragePercentage = decimal.NewFromFloat(average).Mul(hundred).Round(2).InexactFloat64()
	}
	return result, nil
}

func (uc *analyticsUseCase) VideoStats(ctx context.Context, videoID string) (*entity.VideoStats, error) {
	const op = "video_stats"
	defer metrics.ObserveOperation(op, time.Now())

	video, err := uc.analyticsRepo.GetVideo(ctx, videoID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("video %s: %w", videoID, err))
	}

	stats, err := uc.analyticsRepo.GetVideoCounts(ctx, videoID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count video activity: %w", err))
	}
	stats.Title = video.Title
	return stats, nil
}

func (uc *analyticsUseCase) ChannelInfo(ctx context.Context, channelID string) (*entity.ChannelInfo, error) {
	const op = "channel_info"
	defer metrics.ObserveOperation(op, time.Now())

	channel, err := uc.channel(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, err)
	}

	subscribers, err := uc.analyticsRepo.CountActiveSubscribers(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count subscribers: %w", err))
	}
	videos, err := uc.analyticsRepo.ListChannelVideoViews(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count video views: %w", err))
	}
	strikes, err := uc.analyticsRepo.ListStrikes(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list strikes: %w", err))
	}

	var totalViews int64
	for _, v := range videos {
		totalViews += v.Views
	}

	return &entity.ChannelInfo{
		ChannelID:     channel.ID,
		Name:          channel.Name,
		OwnerID:       channel.OwnerID,
		Subscribers:   subscribers,
		TotalViews:    totalViews,
		ActiveStrikes: CountActiveStrikes(strikes, uc.clock.Now()),
		Videos:        videos,
	}, nil
}
