package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Report struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Reason     string    `gorm:"type:varchar(512);not null" json:"reason"`
	ReporterID string    `gorm:"type:uuid;not null;index" json:"reporter_id"`
	VideoID    string    `gorm:"type:uuid;not null;index" json:"video_id"`
	IsResolved bool      `gorm:"not null;default:false" json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
