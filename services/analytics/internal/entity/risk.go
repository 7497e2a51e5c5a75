package entity

import "time"

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type Strike struct {
	ID        string
	ChannelID string
	IssuedAt  time.Time
	Duration  time.Duration
}

// ReportStats aggregates the reports filed against one channel's videos.
type ReportStats struct {
	ChannelID       string
	ChannelName     string
	TotalReports    int64
	ResolvedReports int64
	ReportedVideos  int64
	UniqueReporters int64
}

type ChannelRiskProfile struct {
	ChannelID          string    `json:"channel_id"`
	ChannelName        string    `json:"channel_name"`
	ActiveStrikes      int64     `json:"active_strikes"`
	TotalStrikes       int64     `json:"total_strikes"`
	TotalReports       int64     `json:"total_reports"`
	ReportedVideoCount int64     `json:"reported_video_count"`
	UniqueReporters    int64     `json:"unique_reporters"`
	ResolvedPercentage float64   `json:"resolved_percentage"`
	RiskLevel          RiskLevel `json:"risk_level"`
}
