package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"vidstream/pkg/metrics"
	"vidstream/services/analytics/internal/entity"
)

const (
	highRiskReports   = 10
	highRiskStrikes   = 2
	mediumRiskReports = 5
	mediumRiskStrikes = 1
)

// ActiveStrikeCount counts the channel's strikes that have not yet expired.
func (uc *analyticsUseCase) ActiveStrikeCount(ctx context.Context, channelID string) (int64, error) {
	const op = "active_strike_count"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.channel(ctx, channelID); err != nil {
		return 0, uc.fail(op, err)
	}

	strikes, err := uc.analyticsRepo.ListStrikes(ctx, channelID)
	if err != nil {
		return 0, uc.fail(op, fmt.Errorf("failed to list strikes: %w", err))
	}
	return CountActiveStrikes(strikes, uc.clock.Now()), nil
}

// ChannelRiskProfile classifies one channel. A channel with fewer than
// minReports reports is reported as not found, the same way it would be
// absent from ChannelsRiskReport.
func (uc *analyticsUseCase) ChannelRiskProfile(ctx context.Context, channelID string, minReports int64) (*entity.ChannelRiskProfile, error) {
	const op = "channel_risk_profile"
	defer metrics.ObserveOperation(op, time.Now())

	channel, err := uc.channel(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, err)
	}

	stats, err := uc.analyticsRepo.GetChannelReportStats(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to aggregate reports: %w", err))
	}
	if stats.TotalReports < minReports {
		return nil, uc.fail(op, fmt.Errorf("channel %s has fewer than %d reports: %w", channelID, minReports, entity.ErrNotFound))
	}
	stats.ChannelName = channel.Name

	strikes, err := uc.analyticsRepo.ListStrikes(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list strikes: %w", err))
	}

	return BuildRiskProfile(stats, strikes, uc.clock.Now()), nil
}

// ChannelsRiskReport profiles every channel with at least minReports reports,
// most reported first.
func (uc *analyticsUseCase) ChannelsRiskReport(ctx context.Context, minReports int64, limit int) ([]*entity.ChannelRiskProfile, error) {
	const op = "channels_risk_report"
	defer metrics.ObserveOperation(op, time.Now())

	statsList, err := uc.analyticsRepo.ListChannelReportStats(ctx, minReports)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to aggregate reports: %w", err))
	}

	channelIDs := make([]string, len(statsList))
	for i, stats := range statsList {
		channelIDs[i] = stats.ChannelID
	}
	strikes, err := uc.analyticsRepo.ListStrikes(ctx, channelIDs...)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list strikes: %w", err))
	}

	byChannel := make(map[string][]*entity.Strike, len(statsList))
	for _, strike := range strikes {
		byChannel[strike.ChannelID] = append(byChannel[strike.ChannelID], strike)
	}

	now := uc.clock.Now()
	profiles := make([]*entity.ChannelRiskProfile, 0, len(statsList))
	for _, stats := range statsList {
		profiles = append(profiles, BuildRiskProfile(stats, byChannel[stats.ChannelID], now))
	}

	slices.SortFunc(profiles, func(a, b *entity.ChannelRiskProfile) int {
		if c := cmp.Compare(b.TotalReports, a.TotalReports); c != 0 {
			return c
		}
		return strings.Compare(a.ChannelID, b.ChannelID)
	})
	if limit >= 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}

// CountActiveStrikes counts strikes whose issue time plus duration is still after now.
func CountActiveStrikes(strikes []*entity.Strike, now time.Time) int64 {
	var active int64
	for _, strike := range strikes {
		if strike.IssuedAt.Add(strike.Duration).After(now) {
			active++
		}
	}
	return active
}

// ClassifyRisk maps all-time strikes and total reports onto a risk tier.
func ClassifyRisk(totalReports, totalStrikes int64) entity.RiskLevel {
	switch {
	case totalReports >= highRiskReports || totalStrikes >= highRiskStrikes:
		return entity.RiskHigh
	case totalReports >= mediumRiskReports || totalStrikes >= mediumRiskStrikes:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}

// BuildRiskProfile classifies on every strike ever issued. ActiveStrikes is
// carried along for display only and does not affect the level.
func BuildRiskProfile(stats *entity.ReportStats, strikes []*entity.Strike, now time.Time) *entity.ChannelRiskProfile {
	totalStrikes := int64(len(strikes))
	return &entity.ChannelRiskProfile{
		ChannelID:          stats.ChannelID,
		ChannelName:        stats.ChannelName,
		ActiveStrikes:      CountActiveStrikes(strikes, now),
		TotalStrikes:       totalStrikes,
		TotalReports:       stats.TotalReports,
		ReportedVideoCount: stats.ReportedVideos,
		UniqueReporters:    stats.UniqueReporters,
		ResolvedPercentage: Percentage(stats.ResolvedReports, stats.TotalReports),
		RiskLevel:          ClassifyRisk(stats.TotalReports, totalStrikes),
	}
}
