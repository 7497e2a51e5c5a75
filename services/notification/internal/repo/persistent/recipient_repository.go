package persistent

import (
	"context"
	"errors"
	"fmt"

	"vidstream/pkg/models"
	"vidstream/services/notification/internal/entity"

	"gorm.io/gorm"
)

// RecipientRepository resolves the owner a moderation event should reach.
type RecipientRepository interface {
	ChannelOwner(ctx context.Context, channelID string) (*entity.ChannelOwner, error)
	VideoOwner(ctx context.Context, videoID string) (*entity.VideoOwner, error)
}

type recipientRepository struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{db: db}
}

func (r *recipientRepository) ChannelOwner(ctx context.Context, channelID string) (*entity.ChannelOwner, error) {
	var channel models.Channel
	err := r.db.WithContext(ctx).
		Select("id", "name", "owner_id").
		Where("id = ?", channelID).
		First(&channel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("channel %s: %w", channelID, entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &entity.ChannelOwner{ChannelID: channel.ID, Name: channel.Name, OwnerID: channel.OwnerID}, nil
}

type videoOwnerRow struct {
	VideoID string
	Title   string
	OwnerID string
}

func (r *recipientRepository) VideoOwner(ctx context.Context, videoID string) (*entity.VideoOwner, error) {
	var rows []videoOwnerRow
	err := r.db.WithContext(ctx).
		Table("videos").
		Select("videos.id AS video_id, videos.title, channels.owner_id").
		Joins("JOIN channels ON channels.id = videos.channel_id").
		Where("videos.id = ?", videoID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, entity.ErrNotFound)
	}
	return &entity.VideoOwner{VideoID: rows[0].VideoID, Title: rows[0].Title, OwnerID: rows[0].OwnerID}, nil
}
