package model

import "time"

// Rows scanned from aggregate queries. Column names match the SELECT aliases
// in repo/persistent.

type UserRow struct {
	ID          string `gorm:"column:id"`
	Username    string `gorm:"column:username"`
	IsModerator bool   `gorm:"column:is_moderator"`
	IsBanned    bool   `gorm:"column:is_banned"`
	IsDeleted   bool   `gorm:"column:is_deleted"`
}

type ChannelRow struct {
	ID      string `gorm:"column:id"`
	Name    string `gorm:"column:name"`
	OwnerID string `gorm:"column:owner_id"`
}

type VideoRow struct {
	ID        string `gorm:"column:id"`
	Title     string `gorm:"column:title"`
	ChannelID string `gorm:"column:channel_id"`
}

// KeyCountRow is the result shape of a single-key GROUP BY count.
type KeyCountRow struct {
	Key   string `gorm:"column:group_key"`
	Name  string `gorm:"column:group_name"`
	Count int64  `gorm:"column:count"`
}

type PaidPeriodRow struct {
	ID          string     `gorm:"column:id"`
	Tier        string     `gorm:"column:tier"`
	ActiveSince time.Time  `gorm:"column:active_since"`
	ActiveTo    *time.Time `gorm:"column:active_to"`
}

type StrikeRow struct {
	ID        string    `gorm:"column:id"`
	ChannelID string    `gorm:"column:channel_id"`
	IssuedAt  time.Time `gorm:"column:issued_at"`
	Duration  int64     `gorm:"column:duration"`
}

type ReportStatsRow struct {
	ChannelID       string `gorm:"column:channel_id"`
	ChannelName     string `gorm:"column:channel_name"`
	TotalReports    int64  `gorm:"column:total_reports"`
	ResolvedReports int64  `gorm:"column:resolved_reports"`
	ReportedVideos  int64  `gorm:"column:reported_videos"`
	UniqueReporters int64  `gorm:"column:unique_reporters"`
}

type ReporterStatsRow struct {
	TotalReports    int64 `gorm:"column:total_reports"`
	ResolvedReports int64 `gorm:"column:resolved_reports"`
}

type ProblematicReporterRow struct {
	UserID      string `gorm:"column:user_id"`
	Username    string `gorm:"column:username"`
	IsBanned    bool   `gorm:"column:is_banned"`
	ReportCount int64  `gorm:"column:report_count"`
}

type VideoCountsRow struct {
	Views    int64 `gorm:"column:views"`
	Likes    int64 `gorm:"column:likes"`
	Dislikes int64 `gorm:"column:dislikes"`
}

type WatchAverageRow struct {
	Views   int64   `gorm:"column:views"`
	Average float64 `gorm:"column:average"`
}

type VideoViewsRow struct {
	VideoID string `gorm:"column:video_id"`
	Title   string `gorm:"column:title"`
	Views   int64  `gorm:"column:views"`
}
