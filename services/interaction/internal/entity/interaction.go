package entity

import "time"

const (
	ReactionLiked    = "Liked"
	ReactionDisliked = "Disliked"
)

// Actor is the user performing an interaction.
type Actor struct {
	ID        string
	IsBanned  bool
	IsDeleted bool
}

type VideoRef struct {
	ID        string
	ChannelID string
	IsActive  bool
}

// View is the latest watch state of a video by a user. Watching again
// replaces it.
type View struct {
	UserID            string    `json:"user_id"`
	VideoID           string    `json:"video_id"`
	WatchedPercentage float64   `json:"watched_percentage"`
	Reaction          *string   `json:"reaction"`
	WatchedAt         time.Time `json:"watched_at"`
}

type Comment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	VideoID     string    `json:"video_id"`
	Text        string    `json:"comment_text"`
	CommentedAt time.Time `json:"commented_at"`
}

type Report struct {
	ID         string    `json:"id"`
	ReporterID string    `json:"reporter_id"`
	VideoID    string    `json:"video_id"`
	Reason     string    `json:"reason"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

type Subscription struct {
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	IsActive  bool   `json:"is_active"`
}
