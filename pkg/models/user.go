package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Username    string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	IsModerator bool      `gorm:"not null;default:false" json:"is_moderator"`
	IsBanned    bool      `gorm:"not null;default:false" json:"is_banned"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
