package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidstream/pkg/models"
	"vidstream/services/moderation/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModerationRepository applies moderator decisions. Every mutation locks its
// target row, checks the current state, then writes, all in one transaction.
type ModerationRepository interface {
	IssueStrike(ctx context.Context, channelID string, videoID *string, issuedAt time.Time, duration time.Duration) (*entity.StrikeOutcome, error)
	ResolveReport(ctx context.Context, reportID string) (*entity.Report, error)
	BanUser(ctx context.Context, userID string) (*entity.BannedUser, error)
	ListReports(ctx context.Context, resolved *bool, skip, limit int) ([]*entity.Report, error)
	DeactivateVideo(ctx context.Context, videoID string) (*entity.VideoState, error)
	DemonetizeVideo(ctx context.Context, videoID string) (*entity.VideoState, error)
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *moderationRepository) IssueStrike(ctx context.Context, channelID string, videoID *string, issuedAt time.Time, duration time.Duration) (*entity.StrikeOutcome, error) {
	var outcome *entity.StrikeOutcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var channel models.Channel
		if err := forUpdate(tx).Where("id = ?", channelID).First(&channel).Error; err != nil {
			return fmt.Errorf("channel %s: %w", channelID, translate(err))
		}

		if videoID != nil {
			var video models.Video
			if err := tx.Select("id", "channel_id").Where("id = ?", *videoID).First(&video).Error; err != nil {
				return fmt.Errorf("video %s: %w", *videoID, translate(err))
			}
			if video.ChannelID != channel.ID {
				return fmt.Errorf("video %s does not belong to channel %s: %w", *videoID, channelID, entity.ErrInvalidState)
			}
		}

		strike := &models.ChannelStrike{
			ChannelID: channel.ID,
			VideoID:   videoID,
			IssuedAt:  issuedAt,
			Duration:  duration,
		}
		if err := tx.Create(strike).Error; err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&models.ChannelStrike{}).Where("channel_id = ?", channel.ID).Count(&total).Error; err != nil {
			return err
		}

		outcome = &entity.StrikeOutcome{
			Strike:       ToStrikeEntity(strike),
			ChannelName:  channel.Name,
			TotalStrikes: total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (r *moderationRepository) ResolveReport(ctx context.Context, reportID string) (*entity.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", reportID).First(&report).Error; err != nil {
			return fmt.Errorf("report %s: %w", reportID, translate(err))
		}
		if report.IsResolved {
			return fmt.Errorf("report %s is already resolved: %w", reportID, entity.ErrInvalidState)
		}
		return tx.Model(&report).Update("is_resolved", true).Error
	})
	if err != nil {
		return nil, err
	}
	return ToReportEntity(&report), nil
}

func (r *moderationRepository) BanUser(ctx context.Context, userID string) (*entity.BannedUser, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", userID).First(&user).Error; err != nil {
			return fmt.Errorf("user %s: %w", userID, translate(err))
		}
		if user.IsDeleted {
			return fmt.Errorf("user %s: %w", userID, entity.ErrGone)
		}
		if user.IsBanned {
			return fmt.Errorf("user %s is already banned: %w", userID, entity.ErrInvalidState)
		}
		return tx.Model(&user).Update("is_banned", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity.BannedUser{ID: user.ID, Username: user.Username}, nil
}

func (r *moderationRepository) ListReports(ctx context.Context, resolved *bool, skip, limit int) ([]*entity.Report, error) {
	query := r.db.WithContext(ctx).Model(&models.Report{})
	if resolved != nil {
		query = query.Where("is_resolved = ?", *resolved)
	}

	var rows []models.Report
	if err := query.Order("created_at DESC, id ASC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return ToReportEntities(rows), nil
}

func (r *moderationRepository) DeactivateVideo(ctx context.Context, videoID string) (*entity.VideoState, error) {
	return r.clearVideoFlag(ctx, videoID, "is_active", func(v *models.Video) *bool { return &v.IsActive }, "inactive")
}

func (r *moderationRepository) DemonetizeVideo(ctx context.Context, videoID string) (*entity.VideoState, error) {
	return r.clearVideoFlag(ctx, videoID, "is_monetized", func(v *models.Video) *bool { return &v.IsMonetized }, "not monetized")
}

// clearVideoFlag switches a boolean video column off, rejecting videos where
// it already is.
func (r *moderationRepository) clearVideoFlag(ctx context.Context, videoID, column string, flag func(*models.Video) *bool, offState string) (*entity.VideoState, error) {
	var video models.Video
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", videoID).First(&video).Error; err != nil {
			return fmt.Errorf("video %s: %w", videoID, translate(err))
		}
		if !*flag(&video) {
			return fmt.Errorf("video %s is already %s: %w", videoID, offState, entity.ErrInvalidState)
		}
		if err := tx.Model(&video).Update(column, false).Error; err != nil {
			return err
		}
		*flag(&video) = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToVideoState(&video), nil
}
