package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidstream/pkg/clock"
	"vidstream/pkg/logger"
	"vidstream/pkg/metrics"
	"vidstream/pkg/queue"
	"vidstream/services/moderation/internal/entity"
	"vidstream/services/moderation/internal/repo/persistent"
)

const (
	DefaultStrikeDays  = 7
	DefaultReportLimit = 50

	publishTimeout = 3 * time.Second
)

// EventPublisher delivers moderation events to the broker.
type EventPublisher interface {
	PublishModerationEvent(ctx context.Context, event queue.ModerationEvent) error
}

type StrikeRequest struct {
	VideoID      *string
	DurationDays *int
}

type ModerationUseCase interface {
	IssueStrike(ctx context.Context, moderatorID, channelID string, req StrikeRequest) (*entity.StrikeResult, error)
	ResolveReport(ctx context.Context, moderatorID, reportID string) (*entity.ReportResolution, error)
	BanUser(ctx context.Context, moderatorID, userID string) (*entity.BanResult, error)
	ListReports(ctx context.Context, resolved *bool, skip, limit int) (*entity.ReportPage, error)
	DeactivateVideo(ctx context.Context, moderatorID, videoID string) (*entity.VideoAction, error)
	DemonetizeVideo(ctx context.Context, moderatorID, videoID string) (*entity.VideoAction, error)
}

type moderationUseCase struct {
	moderationRepo persistent.ModerationRepository
	publisher      EventPublisher
	clock          clock.Clock
	logger         *logger.Logger
}

// NewModerationUseCase wires the use case. publisher may be nil, in which
// case events are dropped.
func NewModerationUseCase(moderationRepo persistent.ModerationRepository, publisher EventPublisher, clk clock.Clock, logger *logger.Logger) ModerationUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	return &moderationUseCase{
		moderationRepo: moderationRepo,
		publisher:      publisher,
		clock:          clk,
		logger:         logger,
	}
}

func (uc *moderationUseCase) IssueStrike(ctx context.Context, moderatorID, channelID string, req StrikeRequest) (*entity.StrikeResult, error) {
	defer metrics.ObserveOperation("moderation.issue_strike", time.Now())

	days := DefaultStrikeDays
	if req.DurationDays != nil {
		days = *req.DurationDays
	}
	if days < 1 {
		return nil, uc.fail("moderation.issue_strike", fmt.Errorf("duration_days must be positive: %w", entity.ErrInvalidState))
	}

	now := uc.clock.Now()
	outcome, err := uc.moderationRepo.IssueStrike(ctx, channelID, req.VideoID, now, time.Duration(days)*24*time.Hour)
	if err != nil {
		return nil, uc.fail("moderation.issue_strike", err)
	}

	event := queue.ModerationEvent{
		Type:         queue.EventStrikeIssued,
		ChannelID:    channelID,
		StrikeID:     outcome.Strike.ID,
		TotalStrikes: outcome.TotalStrikes,
		ModeratorID:  moderatorID,
		OccurredAt:   now,
	}
	if req.VideoID != nil {
		event.VideoID = *req.VideoID
	}
	uc.publish(ctx, event)

	return &entity.StrikeResult{
		Message:     StrikeMessage(outcome.TotalStrikes),
		ChannelID:   channelID,
		ChannelName: outcome.ChannelName,
		Strikes:     outcome.TotalStrikes,
		Strike:      outcome.Strike,
	}, nil
}

// StrikeMessage is the confirmation shown to the moderator, warning once the
// channel has accumulated the penalty threshold of strikes.
func StrikeMessage(totalStrikes int64) string {
	if totalStrikes >= entity.PenaltyStrikeThreshold {
		return entity.StrikeIssuedMessage + entity.StrikePenaltyMessage
	}
	return entity.StrikeIssuedMessage
}

func (uc *moderationUseCase) ResolveReport(ctx context.Context, moderatorID, reportID string) (*entity.ReportResolution, error) {
	defer metrics.ObserveOperation("moderation.resolve_report", time.Now())

	report, err := uc.moderationRepo.ResolveReport(ctx, reportID)
	if err != nil {
		return nil, uc.fail("moderation.resolve_report", err)
	}

	uc.publish(ctx, queue.ModerationEvent{
		Type:        queue.EventReportClosed,
		ReportID:    report.ID,
		VideoID:     report.VideoID,
		UserID:      report.ReporterID,
		ModeratorID: moderatorID,
		OccurredAt:  uc.clock.Now(),
	})

	return &entity.ReportResolution{
		Message:    entity.ReportResolvedMessage,
		ReportID:   report.ID,
		IsResolved: report.IsResolved,
		VideoID:    report.VideoID,
	}, nil
}

func (uc *moderationUseCase) BanUser(ctx context.Context, moderatorID, userID string) (*entity.BanResult, error) {
	defer metrics.ObserveOperation("moderation.ban_user", time.Now())

	user, err := uc.moderationRepo.BanUser(ctx, userID)
	if err != nil {
		return nil, uc.fail("moderation.ban_user", err)
	}

	uc.publish(ctx, queue.ModerationEvent{
		Type:        queue.EventUserBanned,
		UserID:      user.ID,
		ModeratorID: moderatorID,
		OccurredAt:  uc.clock.Now(),
	})

	return &entity.BanResult{
		Message:  entity.UserBannedMessage,
		UserID:   user.ID,
		Username: user.Username,
		IsBanned: true,
	}, nil
}

func (uc *moderationUseCase) ListReports(ctx context.Context, resolved *bool, skip, limit int) (*entity.ReportPage, error) {
	defer metrics.ObserveOperation("moderation.list_reports", time.Now())

	if limit <= 0 {
		limit = DefaultReportLimit
	}
	if skip < 0 {
		skip = 0
	}

	reports, err := uc.moderationRepo.ListReports(ctx, resolved, skip, limit)
	if err != nil {
		return nil, uc.fail("moderation.list_reports", err)
	}

	return &entity.ReportPage{
		Reports: reports,
		Count:   len(reports),
		Skip:    skip,
		Limit:   limit,
	}, nil
}

func (uc *moderationUseCase) DeactivateVideo(ctx context.Context, moderatorID, videoID string) (*entity.VideoAction, error) {
	defer metrics.ObserveOperation("moderation.deactivate_video", time.Now())

	video, err := uc.moderationRepo.DeactivateVideo(ctx, videoID)
	if err != nil {
		return nil, uc.fail("moderation.deactivate_video", err)
	}

	uc.publish(ctx, queue.ModerationEvent{
		Type:        queue.EventVideoDeactivated,
		VideoID:     video.ID,
		ModeratorID: moderatorID,
		OccurredAt:  uc.clock.Now(),
	})
	return &entity.VideoAction{Message: entity.VideoDeactivatedMessage, VideoState: video}, nil
}

func (uc *moderationUseCase) DemonetizeVideo(ctx context.Context, moderatorID, videoID string) (*entity.VideoAction, error) {
	defer metrics.ObserveOperation("moderation.demonetize_video", time.Now())

	video, err := uc.moderationRepo.DemonetizeVideo(ctx, videoID)
	if err != nil {
		return nil, uc.fail("moderation.demonetize_video", err)
	}

	uc.publish(ctx, queue.ModerationEvent{
		Type:        queue.EventVideoDemonetized,
		VideoID:     video.ID,
		ModeratorID: moderatorID,
		OccurredAt:  uc.clock.Now(),
	})
	return &entity.VideoAction{Message: entity.VideoDemonetizedMessage, VideoState: video}, nil
}

// publish is best effort: the decision is already committed, so a broker
// failure is logged and counted but never returned.
func (uc *moderationUseCase) publish(ctx context.Context, event queue.ModerationEvent) {
	if uc.publisher == nil {
		metrics.ModerationEventsPublished.WithLabelValues(event.Type, "skipped").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := uc.publisher.PublishModerationEvent(ctx, event); err != nil {
		metrics.ModerationEventsPublished.WithLabelValues(event.Type, "error").Inc()
		uc.logger.Warn("Failed to publish %s event: %v", event.Type, err)
		return
	}
	metrics.ModerationEventsPublished.WithLabelValues(event.Type, "ok").Inc()
}

func (uc *moderationUseCase) fail(operation string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, entity.ErrNotFound):
		kind = "not_found"
	case errors.Is(err, entity.ErrGone):
		kind = "gone"
	case errors.Is(err, entity.ErrInvalidState):
		kind = "invalid_state"
	}
	metrics.AnalyticsOperationErrors.WithLabelValues(operation, kind).Inc()
	if kind == "internal" {
		uc.logger.Error("%s failed: %v", operation, err)
	}
	return err
}
