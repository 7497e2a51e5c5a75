package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription has no gorm default on IsActive so that an explicit false
// survives Create. The schema default is still true.
type Subscription struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	ChannelID string    `gorm:"type:uuid;primaryKey;index" json:"channel_id"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type PaidSubTier string

const (
	TierBronze  PaidSubTier = "BRONZE"
	TierSilver  PaidSubTier = "SILVER"
	TierGold    PaidSubTier = "GOLD"
	TierDiamond PaidSubTier = "DIAMOND"
)

var PaidSubTiers = []PaidSubTier{TierBronze, TierSilver, TierGold, TierDiamond}

// PaidSubscription is one billing period of a Subscription. A nil ActiveTo
// means the period is still open.
type PaidSubscription struct {
	ID           string      `gorm:"type:uuid;primary_key" json:"id"`
	SubUserID    string      `gorm:"type:uuid;not null;index:idx_paid_sub_parent,priority:1" json:"sub_user_id"`
	SubChannelID string      `gorm:"type:uuid;not null;index:idx_paid_sub_parent,priority:2" json:"sub_channel_id"`
	Tier         PaidSubTier `gorm:"type:varchar(16);not null" json:"tier"`
	ActiveSince  time.Time   `gorm:"not null" json:"active_since"`
	ActiveTo     *time.Time  `json:"active_to,omitempty"`
}

func (p *PaidSubscription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
