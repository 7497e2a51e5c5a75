package persistent

import (
	"vidstream/pkg/models"
	"vidstream/services/interaction/internal/entity"
)

func ToViewModel(e *entity.View) *models.View {
	m := &models.View{
		UserID:            e.UserID,
		VideoID:           e.VideoID,
		WatchedPercentage: e.WatchedPercentage,
		WatchedAt:         e.WatchedAt,
	}
	if e.Reaction != nil {
		r := models.Reaction(*e.Reaction)
		m.Reaction = &r
	}
	return m
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	return &entity.Comment{
		ID:          m.ID,
		UserID:      m.UserID,
		VideoID:     m.VideoID,
		Text:        m.CommentText,
		CommentedAt: m.CommentedAt,
	}
}

func ToReportEntity(m *models.Report) *entity.Report {
	return &entity.Report{
		ID:         m.ID,
		ReporterID: m.ReporterID,
		VideoID:    m.VideoID,
		Reason:     m.Reason,
		IsResolved: m.IsResolved,
		CreatedAt:  m.CreatedAt,
	}
}
