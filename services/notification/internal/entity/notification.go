package entity

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

const (
	TypeStrike      = "strike"
	TypeBan         = "ban"
	TypeReport      = "report"
	TypeVideoAction = "video_action"
)

// Notification is a notice delivered to the user a moderation decision
// affects.
type Notification struct {
	UserID    string            `json:"user_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
}

// VideoOwner identifies who is told about actions on a video.
type VideoOwner struct {
	VideoID string
	Title   string
	OwnerID string
}

type ChannelOwner struct {
	ChannelID string
	Name      string
	OwnerID   string
}
