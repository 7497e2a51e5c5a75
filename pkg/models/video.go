package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"type:varchar(128);not null" json:"title"`
	Description string    `gorm:"type:varchar(256)" json:"description"`
	ChannelID   string    `gorm:"type:uuid;not null;index" json:"channel_id"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	IsMonetized bool      `gorm:"not null;default:false" json:"is_monetized"`
	UploadedAt  time.Time `gorm:"not null" json:"uploaded_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

type Comment struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	CommentText string    `gorm:"type:varchar(2048);not null" json:"comment_text"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	VideoID     string    `gorm:"type:uuid;not null;index" json:"video_id"`
	CommentedAt time.Time `gorm:"not null" json:"commented_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type Reaction string

const (
	ReactionLiked    Reaction = "Liked"
	ReactionDisliked Reaction = "Disliked"
)

// View is keyed by (user, video); a user watching a video again updates the row.
type View struct {
	UserID            string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	VideoID           string    `gorm:"type:uuid;primaryKey;index" json:"video_id"`
	WatchedPercentage float64   `gorm:"not null;default:0;check:watched_percentage >= 0 AND watched_percentage <= 1" json:"watched_percentage"`
	Reaction          *Reaction `gorm:"type:varchar(16)" json:"reaction,omitempty"`
	WatchedAt         time.Time `gorm:"not null" json:"watched_at"`
}
