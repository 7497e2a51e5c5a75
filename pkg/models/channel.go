package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Channel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(32);not null" json:"name"`
	OwnerID   string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// ChannelStrike is a moderation penalty. It stops counting as active once
// IssuedAt+Duration has passed, but is never deleted.
type ChannelStrike struct {
	ID        string        `gorm:"type:uuid;primary_key" json:"id"`
	ChannelID string        `gorm:"type:uuid;not null;index" json:"channel_id"`
	VideoID   *string       `gorm:"type:uuid" json:"video_id,omitempty"`
	IssuedAt  time.Time     `gorm:"not null" json:"issued_at"`
	Duration  time.Duration `gorm:"type:bigint;not null" json:"duration"`
}

func (s *ChannelStrike) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
