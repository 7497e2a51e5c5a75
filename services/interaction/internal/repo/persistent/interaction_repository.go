package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidstream/pkg/models"
	"vidstream/services/interaction/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InteractionRepository records the viewer facts the analytics aggregate:
// views with reactions, comments, reports and subscriptions.
type InteractionRepository interface {
	GetActor(ctx context.Context, userID string) (*entity.Actor, error)
	GetVideo(ctx context.Context, videoID string) (*entity.VideoRef, error)
	ChannelExists(ctx context.Context, channelID string) (bool, error)

	UpsertView(ctx context.Context, view *entity.View) error
	CreateComment(ctx context.Context, userID, videoID, text string, at time.Time) (*entity.Comment, error)
	CreateReport(ctx context.Context, reporterID, videoID, reason string, at time.Time) (*entity.Report, error)
	Subscribe(ctx context.Context, userID, channelID string, at time.Time) error
	Unsubscribe(ctx context.Context, userID, channelID string) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func (r *interactionRepository) GetActor(ctx context.Context, userID string) (*entity.Actor, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("id", "is_banned", "is_deleted").
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, translate(err))
	}
	return &entity.Actor{ID: user.ID, IsBanned: user.IsBanned, IsDeleted: user.IsDeleted}, nil
}

func (r *interactionRepository) GetVideo(ctx context.Context, videoID string) (*entity.VideoRef, error) {
	var video models.Video
	err := r.db.WithContext(ctx).
		Select("id", "channel_id", "is_active").
		Where("id = ?", videoID).
		First(&video).Error
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, translate(err))
	}
	return &entity.VideoRef{ID: video.ID, ChannelID: video.ChannelID, IsActive: video.IsActive}, nil
}

func (r *interactionRepository) ChannelExists(ctx context.Context, channelID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Channel{}).Where("id = ?", channelID).Count(&count).Error
	return count > 0, err
}

// UpsertView keeps one row per (user, video); a repeat watch overwrites it.
func (r *interactionRepository) UpsertView(ctx context.Context, view *entity.View) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_percentage", "reaction", "watched_at"}),
		}).
		Create(ToViewModel(view)).Error
}

func (r *interactionRepository) CreateComment(ctx context.Context, userID, videoID, text string, at time.Time) (*entity.Comment, error) {
	comment := &models.Comment{
		CommentText: text,
		UserID:      userID,
		VideoID:     videoID,
		CommentedAt: at,
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(comment), nil
}

func (r *interactionRepository) CreateReport(ctx context.Context, reporterID, videoID, reason string, at time.Time) (*entity.Report, error) {
	report := &models.Report{
		Reason:     reason,
		ReporterID: reporterID,
		VideoID:    videoID,
		CreatedAt:  at,
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return ToReportEntity(report), nil
}

// Subscribe creates the subscription on first use and otherwise reactivates
// it, so paid periods keep pointing at the same row.
func (r *interactionRepository) Subscribe(ctx context.Context, userID, channelID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "channel_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_active"}),
		}).
		Create(&models.Subscription{
			UserID:    userID,
			ChannelID: channelID,
			IsActive:  true,
			CreatedAt: at,
		}).Error
}

func (r *interactionRepository) Unsubscribe(ctx context.Context, userID, channelID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ? AND channel_id = ? AND is_active", userID, channelID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no active subscription to channel %s: %w", channelID, entity.ErrNotFound)
	}
	return nil
}
