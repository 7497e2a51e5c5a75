package persistent

import (
	"vidstream/pkg/models"
	"vidstream/services/moderation/internal/entity"
)

func ToStrikeEntity(s *models.ChannelStrike) *entity.Strike {
	return &entity.Strike{
		ID:        s.ID,
		ChannelID: s.ChannelID,
		VideoID:   s.VideoID,
		IssuedAt:  s.IssuedAt,
		Duration:  s.Duration,
	}
}

func ToReportEntity(r *models.Report) *entity.Report {
	return &entity.Report{
		ID:         r.ID,
		Reason:     r.Reason,
		CreatedAt:  r.CreatedAt,
		IsResolved: r.IsResolved,
		ReporterID: r.ReporterID,
		VideoID:    r.VideoID,
	}
}

func ToReportEntities(rows []models.Report) []*entity.Report {
	reports := make([]*entity.Report, 0, len(rows))
	for i := range rows {
		reports = append(reports, ToReportEntity(&rows[i]))
	}
	return reports
}

func ToVideoState(v *models.Video) *entity.VideoState {
	return &entity.VideoState{
		ID:          v.ID,
		Title:       v.Title,
		IsActive:    v.IsActive,
		IsMonetized: v.IsMonetized,
	}
}
