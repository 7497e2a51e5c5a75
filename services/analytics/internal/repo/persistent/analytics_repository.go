package persistent

import (
	"context"
	"errors"
	"time"

	"vidstream/pkg/models"
	"vidstream/services/analytics/internal/entity"
	"vidstream/services/analytics/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository is read-only access to the facts the analytics derive from.
// Every aggregate ignores rows contributed by soft-deleted users.
type AnalyticsRepository interface {
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	GetChannel(ctx context.Context, channelID string) (*entity.Channel, error)
	GetVideo(ctx context.Context, videoID string) (*entity.VideoRef, error)

	ListCatalog(ctx context.Context) ([]*entity.VideoRef, error)
	CountViewsByVideo(ctx context.Context) (map[string]int64, error)
	CountUserViewsByChannel(ctx context.Context, userID string) (map[string]int64, error)
	ListActiveSubscriptions(ctx context.Context, userID string) ([]string, error)

	ListPaidPeriods(ctx context.Context, channelID string) ([]*entity.PaidPeriod, error)

	ListStrikes(ctx context.Context, channelIDs ...string) ([]*entity.Strike, error)
	GetChannelReportStats(ctx context.Context, channelID string) (*entity.ReportStats, error)
	ListChannelReportStats(ctx context.Context, minReports int64) ([]*entity.ReportStats, error)

	GetReporterStats(ctx context.Context, userID string) (total int64, resolved int64, err error)
	ListProblematicReporters(ctx context.Context, minReports int64, skip, limit int) ([]*entity.ProblematicReporter, error)

	CountUserViews(ctx context.Context, userID string, from, to time.Time) (int64, error)
	CountUserViewsByChannelBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.ChannelViews, error)
	CountUserComments(ctx context.Context, userID string, from, to time.Time) (int64, error)
	CountUserReactions(ctx context.Context, userID string, from, to time.Time) (int64, error)
	GetWatchAverage(ctx context.Context, userID string) (views int64, average float64, err error)

	GetVideoCounts(ctx context.Context, videoID string) (*entity.VideoStats, error)
	CountActiveSubscribers(ctx context.Context, channelID string) (int64, error)
	ListChannelVideoViews(ctx context.Context, channelID string) ([]*entity.VideoViews, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func (r *analyticsRepository) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	var row model.UserRow
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("id, username, is_moderator, is_banned, is_deleted").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&row), nil
}

func (r *analyticsRepository) GetChannel(ctx context.Context, channelID string) (*entity.Channel, error) {
	var row model.ChannelRow
	err := r.db.WithContext(ctx).Model(&models.Channel{}).
		Select("id, name, owner_id").
		Where("id = ?", channelID).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToChannelEntity(&row), nil
}

func (r *analyticsRepository) GetVideo(ctx context.Context, videoID string) (*entity.VideoRef, error) {
	var row model.VideoRow
	err := r.db.WithContext(ctx).Model(&models.Video{}).
		Select("id, title, channel_id").
		Where("id = ?", videoID).
		Take(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entity.VideoRef{ID: row.ID, Title: row.Title, ChannelID: row.ChannelID}, nil
}

func (r *analyticsRepository) ListCatalog(ctx context.Context) ([]*entity.VideoRef, error) {
	var rows []model.VideoRow
	if err := r.db.WithContext(ctx).Model(&models.Video{}).
		Select("id, title, channel_id").
		Order("id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToVideoRefs(rows), nil
}

func (r *analyticsRepository) CountViewsByVideo(ctx context.Context) (map[string]int64, error) {
	var rows []model.KeyCountRow
	if err := r.db.WithContext(ctx).Table("views AS v").
		Select("v.video_id AS group_key, COUNT(*) AS count").
		Joins("JOIN users u ON u.id = v.user_id").
		Where("u.is_deleted = ?", false).
		Group("v.video_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToCountMap(rows), nil
}

func (r *analyticsRepository) CountUserViewsByChannel(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []model.KeyCountRow
	if err := r.db.WithContext(ctx).Table("views AS v").
		Select("vid.channel_id AS group_key, COUNT(*) AS count").
		Joins("JOIN videos vid ON vid.id = v.video_id").
		Where("v.user_id = ?", userID).
		Group("vid.channel_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToCountMap(rows), nil
}

func (r *analyticsRepository) ListActiveSubscriptions(ctx context.Context, userID string) ([]string, error) {
	var channelIDs []string
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Pluck("channel_id", &channelIDs).Error
	return channelIDs, err
}

func (r *analyticsRepository) ListPaidPeriods(ctx context.Context, channelID string) ([]*entity.PaidPeriod, error) {
	var rows []model.PaidPeriodRow
	if err := r.db.WithContext(ctx).Table("paid_subscriptions AS ps").
		Select("ps.id, ps.tier, ps.active_since, ps.active_to").
		Joins("JOIN users u ON u.id = ps.sub_user_id").
		Where("ps.sub_channel_id = ? AND u.is_deleted = ?", channelID, false).
		Order("ps.active_since, ps.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToPaidPeriods(rows), nil
}

func (r *analyticsRepository) ListStrikes(ctx context.Context, channelIDs ...string) ([]*entity.Strike, error) {
	if len(channelIDs) == 0 {
		return nil, nil
	}
	var rows []model.StrikeRow
	if err := r.db.WithContext(ctx).Model(&models.ChannelStrike{}).
		Select("id, channel_id, issued_at, duration").
		Where("channel_id IN ?", channelIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToStrikes(rows), nil
}

const reportStatsColumns = "COUNT(r.id) AS total_reports, " +
	"COALESCE(SUM(CASE WHEN r.is_resolved THEN 1 ELSE 0 END), 0) AS resolved_reports, " +
	"COUNT(DISTINCT r.video_id) AS reported_videos, " +
	"COUNT(DISTINCT r.reporter_id) AS unique_reporters"

func (r *analyticsRepository) GetChannelReportStats(ctx context.Context, channelID string) (*entity.ReportStats, error) {
	var row model.ReportStatsRow
	if err := r.db.WithContext(ctx).Table("reports AS r").
		Select(reportStatsColumns).
		Joins("JOIN videos vid ON vid.id = r.video_id").
		Joins("JOIN users u ON u.id = r.reporter_id").
		Where("vid.channel_id = ? AND u.is_deleted = ?", channelID, false).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	row.ChannelID = channelID
	return ToReportStats(&row), nil
}

func (r *analyticsRepository) ListChannelReportStats(ctx context.Context, minReports int64) ([]*entity.ReportStats, error) {
	var rows []model.ReportStatsRow
	if err := r.db.WithContext(ctx).Table("channels AS c").
		Select("c.id AS channel_id, c.name AS channel_name, "+reportStatsColumns).
		Joins("LEFT JOIN videos vid ON vid.channel_id = c.id").
		Joins("LEFT JOIN (reports r JOIN users u ON u.id = r.reporter_id AND u.is_deleted = FALSE) ON r.video_id = vid.id").
		Group("c.id, c.name").
		Having("COUNT(r.id) >= ?", minReports).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToReportStatsList(rows), nil
}

func (r *analyticsRepository) GetReporterStats(ctx context.Context, userID string) (int64, int64, error) {
	var row model.ReporterStatsRow
	if err := r.db.WithContext(ctx).Model(&models.Report{}).
		Select("COUNT(*) AS total_reports, COALESCE(SUM(CASE WHEN is_resolved THEN 1 ELSE 0 END), 0) AS resolved_reports").
		Where("reporter_id = ?", userID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.TotalReports, row.ResolvedReports, nil
}

func (r *analyticsRepository) ListProblematicReporters(ctx context.Context, minReports int64, skip, limit int) ([]*entity.ProblematicReporter, error) {
	var rows []model.ProblematicReporterRow
	if err := r.db.WithContext(ctx).Table("users AS u").
		Select("u.id AS user_id, u.username, u.is_banned, COUNT(r.id) AS report_count").
		Joins("JOIN reports r ON r.reporter_id = u.id").
		Where("u.is_deleted = ?", false).
		Group("u.id, u.username, u.is_banned").
		Having("COUNT(r.id) >= ?", minReports).
		Order("report_count DESC, u.id ASC").
		Offset(skip).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToProblematicReporters(rows), nil
}

func (r *analyticsRepository) CountUserViews(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.View{}).
		Where("user_id = ? AND watched_at >= ? AND watched_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountUserViewsByChannelBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.ChannelViews, error) {
	var rows []model.KeyCountRow
	if err := r.db.WithContext(ctx).Table("views AS v").
		Select("c.id AS group_key, c.name AS group_name, COUNT(*) AS count").
		Joins("JOIN videos vid ON vid.id = v.video_id").
		Joins("JOIN channels c ON c.id = vid.channel_id").
		Where("v.user_id = ? AND v.watched_at >= ? AND v.watched_at < ?", userID, from, to).
		Group("c.id, c.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToChannelViews(rows), nil
}

func (r *analyticsRepository) CountUserComments(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("user_id = ? AND commented_at >= ? AND commented_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountUserReactions(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.View{}).
		Where("user_id = ? AND reaction IS NOT NULL AND watched_at >= ? AND watched_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetWatchAverage(ctx context.Context, userID string) (int64, float64, error) {
	var row model.WatchAverageRow
	if err := r.db.WithContext(ctx).Model(&models.View{}).
		Select("COUNT(*) AS views, COALESCE(AVG(watched_percentage), 0) AS average").
		Where("user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Views, row.Average, nil
}

func (r *analyticsRepository) GetVideoCounts(ctx context.Context, videoID string) (*entity.VideoStats, error) {
	db := r.db.WithContext(ctx)

	var row model.VideoCountsRow
	if err := db.Table("views AS v").
		Select("COUNT(*) AS views, "+
			"COALESCE(SUM(CASE WHEN v.reaction = ? THEN 1 ELSE 0 END), 0) AS likes, "+
			"COALESCE(SUM(CASE WHEN v.reaction = ? THEN 1 ELSE 0 END), 0) AS dislikes",
			models.ReactionLiked, models.ReactionDisliked).
		Joins("JOIN users u ON u.id = v.user_id").
		Where("v.video_id = ? AND u.is_deleted = ?", videoID, false).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	var comments int64
	if err := db.Table("comments AS cm").
		Joins("JOIN users u ON u.id = cm.user_id").
		Where("cm.video_id = ? AND u.is_deleted = ?", videoID, false).
		Count(&comments).Error; err != nil {
		return nil, err
	}

	return &entity.VideoStats{
		VideoID:  videoID,
		Views:    row.Views,
		Likes:    row.Likes,
		Dislikes: row.Dislikes,
		Comments: comments,
	}, nil
}

func (r *analyticsRepository) CountActiveSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("subscriptions AS s").
		Joins("JOIN users u ON u.id = s.user_id").
		Where("s.channel_id = ? AND s.is_active = ? AND u.is_deleted = ?", channelID, true, false).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) ListChannelVideoViews(ctx context.Context, channelID string) ([]*entity.VideoViews, error) {
	var rows []model.VideoViewsRow
	if err := r.db.WithContext(ctx).Table("videos AS vid").
		Select("vid.id AS video_id, vid.title, COUNT(u.id) AS views").
		Joins("LEFT JOIN (views v JOIN users u ON u.id = v.user_id AND u.is_deleted = FALSE) ON v.video_id = vid.id").
		Where("vid.channel_id = ?", channelID).
		Group("vid.id, vid.title").
		Order("views DESC, vid.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToVideoViews(rows), nil
}
