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
	"vidstream/services/notification/internal/entity"
	"vidstream/services/notification/internal/repo/persistent"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// NotificationStore persists delivered notifications per user.
type NotificationStore interface {
	Push(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
}

type NotificationUseCase interface {
	HandleModerationEvent(ctx context.Context, event queue.ModerationEvent) error
	GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.NotificationPage, error)
}

type notificationUseCase struct {
	recipientRepo persistent.RecipientRepository
	store         NotificationStore
	clock         clock.Clock
	logger        *logger.Logger
}

func NewNotificationUseCase(recipientRepo persistent.RecipientRepository, store NotificationStore, clk clock.Clock, logger *logger.Logger) NotificationUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	return &notificationUseCase{
		recipientRepo: recipientRepo,
		store:         store,
		clock:         clk,
		logger:        logger,
	}
}

// HandleModerationEvent turns a moderation event into a notification for the
// affected user. Events that can never be delivered are reported as
// queue.ErrUnprocessable so the consumer drops them.
func (uc *notificationUseCase) HandleModerationEvent(ctx context.Context, event queue.ModerationEvent) error {
	notification, err := uc.build(ctx, event)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			err = fmt.Errorf("%w: %v", queue.ErrUnprocessable, err)
		}
		uc.count(event.Type, err)
		return err
	}

	if err := uc.store.Push(ctx, notification); err != nil {
		uc.count(event.Type, err)
		return err
	}

	uc.count(event.Type, nil)
	uc.logger.Info("Delivered %s notification to user %s", event.Type, notification.UserID)
	return nil
}

func (uc *notificationUseCase) count(eventType string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, queue.ErrUnprocessable):
		result = "dropped"
	case err != nil:
		result = "error"
	}
	metrics.ModerationEventsConsumed.WithLabelValues(eventType, result).Inc()
}

func required(event queue.ModerationEvent, field, value string) error {
	if value == "" {
		return fmt.Errorf("%s event without %s: %w", event.Type, field, queue.ErrUnprocessable)
	}
	return nil
}

func (uc *notificationUseCase) build(ctx context.Context, event queue.ModerationEvent) (*entity.Notification, error) {
	n := &entity.Notification{CreatedAt: event.OccurredAt}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = uc.clock.Now()
	}

	switch event.Type {
	case queue.EventStrikeIssued:
		if err := required(event, "channel_id", event.ChannelID); err != nil {
			return nil, err
		}
		channel, err := uc.recipientRepo.ChannelOwner(ctx, event.ChannelID)
		if err != nil {
			return nil, err
		}
		n.UserID = channel.OwnerID
		n.Type = entity.TypeStrike
		n.Title = "Channel strike"
		n.Message = fmt.Sprintf("Your channel %s received a strike and now has %d.", channel.Name, event.TotalStrikes)
		n.Data = map[string]string{"channel_id": channel.ChannelID, "strike_id": event.StrikeID}
		if event.VideoID != "" {
			n.Data["video_id"] = event.VideoID
		}

	case queue.EventVideoDeactivated, queue.EventVideoDemonetized:
		if err := required(event, "video_id", event.VideoID); err != nil {
			return nil, err
		}
		video, err := uc.recipientRepo.VideoOwner(ctx, event.VideoID)
		if err != nil {
			return nil, err
		}
		n.UserID = video.OwnerID
		n.Type = entity.TypeVideoAction
		if event.Type == queue.EventVideoDeactivated {
			n.Title = "Video deactivated"
			n.Message = fmt.Sprintf("Your video %q was deactivated by a moderator.", video.Title)
		} else {
			n.Title = "Video demonetized"
			n.Message = fmt.Sprintf("Your video %q no longer earns revenue.", video.Title)
		}
		n.Data = map[string]string{"video_id": video.VideoID}

	case queue.EventUserBanned:
		if err := required(event, "user_id", event.UserID); err != nil {
			return nil, err
		}
		n.UserID = event.UserID
		n.Type = entity.TypeBan
		n.Title = "Account banned"
		n.Message = "Your account was banned by a moderator."

	case queue.EventReportClosed:
		if err := required(event, "user_id", event.UserID); err != nil {
			return nil, err
		}
		n.UserID = event.UserID
		n.Type = entity.TypeReport
		n.Title = "Report resolved"
		n.Message = "A moderator reviewed and resolved your report."
		n.Data = map[string]string{"report_id": event.ReportID, "video_id": event.VideoID}

	default:
		return nil, fmt.Errorf("event type %q: %w", event.Type, queue.ErrUnprocessable)
	}

	return n, nil
}

func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.NotificationPage, error) {
	defer metrics.ObserveOperation("notification.list", time.Now())

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := uc.store.List(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list notifications for %s: %v", userID, err)
		metrics.AnalyticsOperationErrors.WithLabelValues("notification.list", "internal").Inc()
		return nil, err
	}

	return &entity.NotificationPage{
		Notifications: notifications,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	}, nil
}
