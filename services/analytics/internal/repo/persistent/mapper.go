package persistent

import (
	"time"

	"vidstream/services/analytics/internal/entity"
	"vidstream/services/analytics/internal/model"
)

func ToUserEntity(m *model.UserRow) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		IsModerator: m.IsModerator,
		IsBanned:    m.IsBanned,
		IsDeleted:   m.IsDeleted,
	}
}

func ToChannelEntity(m *model.ChannelRow) *entity.Channel {
	if m == nil {
		return nil
	}
	return &entity.Channel{ID: m.ID, Name: m.Name, OwnerID: m.OwnerID}
}

func ToVideoRefs(rows []model.VideoRow) []*entity.VideoRef {
	results := make([]*entity.VideoRef, len(rows))
	for i := range rows {
		results[i] = &entity.VideoRef{
			ID:        rows[i].ID,
			Title:     rows[i].Title,
			ChannelID: rows[i].ChannelID,
		}
	}
	return results
}

func ToCountMap(rows []model.KeyCountRow) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] += row.Count
	}
	return counts
}

func ToChannelViews(rows []model.KeyCountRow) []*entity.ChannelViews {
	results := make([]*entity.ChannelViews, len(rows))
	for i := range rows {
		results[i] = &entity.ChannelViews{
			ChannelID:   rows[i].Key,
			ChannelName: rows[i].Name,
			Views:       rows[i].Count,
		}
	}
	return results
}

func ToPaidPeriods(rows []model.PaidPeriodRow) []*entity.PaidPeriod {
	results := make([]*entity.PaidPeriod, len(rows))
	for i := range rows {
		results[i] = &entity.PaidPeriod{
			ID:          rows[i].ID,
			Tier:        entity.Tier(rows[i].Tier),
			ActiveSince: rows[i].ActiveSince,
			ActiveTo:    rows[i].ActiveTo,
		}
	}
	return results
}

func ToStrikes(rows []model.StrikeRow) []*entity.Strike {
	results := make([]*entity.Strike, len(rows))
	for i := range rows {
		results[i] = &entity.Strike{
			ID:        rows[i].ID,
			ChannelID: rows[i].ChannelID,
			IssuedAt:  rows[i].IssuedAt,
			Duration:  time.Duration(rows[i].Duration),
		}
	}
	return results
}

func ToReportStats(m *model.ReportStatsRow) *entity.ReportStats {
	if m == nil {
		return nil
	}
	return &entity.ReportStats{
		ChannelID:       m.ChannelID,
		ChannelName:     m.ChannelName,
		TotalReports:    m.TotalReports,
		ResolvedReports: m.ResolvedReports,
		ReportedVideos:  m.ReportedVideos,
		UniqueReporters: m.UniqueReporters,
	}
}

func ToReportStatsList(rows []model.ReportStatsRow) []*entity.ReportStats {
	results := make([]*entity.ReportStats, len(rows))
	for i := range rows {
		results[i] = ToReportStats(&rows[i])
	}
	return results
}

func ToProblematicReporters(rows []model.ProblematicReporterRow) []*entity.ProblematicReporter {
	results := make([]*entity.ProblematicReporter, len(rows))
	for i := range rows {
		results[i] = &entity.ProblematicReporter{
			UserID:      rows[i].UserID,
			Username:    rows[i].Username,
			IsBanned:    rows[i].IsBanned,
			ReportCount: rows[i].ReportCount,
		}
	}
	return results
}

func ToVideoViews(rows []model.VideoViewsRow) []*entity.VideoViews {
	results := make([]*entity.VideoViews, len(rows))
	for i := range rows {
		results[i] = &entity.VideoViews{
			VideoID: rows[i].VideoID,
			Title:   rows[i].Title,
			Views:   rows[i].Views,
		}
	}
	return results
}
