package entity

import "time"

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsModerator bool      `json:"is_moderator"`
	IsBanned    bool      `json:"is_banned"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserUpdate carries the profile fields to change. Nil fields are left as they are.
type UserUpdate struct {
	Username *string
	Email    *string
}

func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil
}
