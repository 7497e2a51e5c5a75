package entity

import "time"

const (
	StrikeIssuedMessage     = "Strike added to channel successfully."
	StrikePenaltyMessage    = " Channel has reached 3 strikes and may face additional penalties."
	ReportResolvedMessage   = "Report resolved successfully"
	UserBannedMessage       = "User banned successfully"
	VideoDeactivatedMessage = "Video deactivated successfully"
	VideoDemonetizedMessage = "Video demonetized successfully"

	// PenaltyStrikeThreshold is the all-time strike count at which a channel is warned.
	PenaltyStrikeThreshold = 3
)

type Strike struct {
	ID        string        `json:"id"`
	ChannelID string        `json:"channel_id"`
	VideoID   *string       `json:"video_id,omitempty"`
	IssuedAt  time.Time     `json:"issued_at"`
	Duration  time.Duration `json:"duration"`
}

// StrikeOutcome is what the store reports after recording a strike.
type StrikeOutcome struct {
	Strike       *Strike
	ChannelName  string
	TotalStrikes int64
}

type StrikeResult struct {
	Message     string  `json:"message"`
	ChannelID   string  `json:"channel_id"`
	ChannelName string  `json:"channel_name"`
	Strikes     int64   `json:"strikes"`
	Strike      *Strike `json:"strike"`
}

type Report struct {
	ID         string    `json:"id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	IsResolved bool      `json:"is_resolved"`
	ReporterID string    `json:"reporter_id"`
	VideoID    string    `json:"video_id"`
}

type ReportResolution struct {
	Message    string `json:"message"`
	ReportID   string `json:"report_id"`
	IsResolved bool   `json:"is_resolved"`
	VideoID    string `json:"video_id"`
}

type ReportPage struct {
	Reports []*Report `json:"reports"`
	Count   int       `json:"count"`
	Skip    int       `json:"skip"`
	Limit   int       `json:"limit"`
}

type BannedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type BanResult struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsBanned bool   `json:"is_banned"`
}

type VideoState struct {
	ID          string `json:"video_id"`
	Title       string `json:"title"`
	IsActive    bool   `json:"is_active"`
	IsMonetized bool   `json:"is_monetized"`
}

type VideoAction struct {
	Message string `json:"message"`
	*VideoState
}
