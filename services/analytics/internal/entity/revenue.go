package entity

import "time"

// PaidPeriod is one billing period of a paid subscription. ActiveTo is nil
// while the period is open.
type PaidPeriod struct {
	ID          string
	Tier        Tier
	ActiveSince time.Time
	ActiveTo    *time.Time
}

type ChannelRevenue struct {
	ChannelID string `json:"channel_id"`
	Revenue   string `json:"revenue"`
	Periods   int    `json:"billed_periods"`
}
