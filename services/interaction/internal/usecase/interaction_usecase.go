package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vidstream/pkg/clock"
	"vidstream/pkg/logger"
	"vidstream/pkg/metrics"
	"vidstream/services/interaction/internal/entity"
	"vidstream/services/interaction/internal/repo/persistent"
)

const (
	MaxCommentLength = 2048
	MaxReasonLength  = 512
)

// ReportThrottle limits how often one user may report the same video.
type ReportThrottle interface {
	Allow(ctx context.Context, reporterID, videoID string) (bool, error)
}

type InteractionUseCase interface {
	RecordView(ctx context.Context, userID, videoID string, watchedPercentage float64, reaction *string) (*entity.View, error)
	AddComment(ctx context.Context, userID, videoID, text string) (*entity.Comment, error)
	FileReport(ctx context.Context, userID, videoID, reason string) (*entity.Report, error)
	Subscribe(ctx context.Context, userID, channelID string) (*entity.Subscription, error)
	Unsubscribe(ctx context.Context, userID, channelID string) (*entity.Subscription, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	throttle        ReportThrottle
	clock           clock.Clock
	logger          *logger.Logger
}

// NewInteractionUseCase wires the use case. throttle may be nil, which
// disables report throttling.
func NewInteractionUseCase(interactionRepo persistent.InteractionRepository, throttle ReportThrottle, clk clock.Clock, logger *logger.Logger) InteractionUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		throttle:        throttle,
		clock:           clk,
		logger:          logger,
	}
}

// actor loads the caller and rejects deleted and banned users. Banned users
// keep their history but may not add to it.
func (uc *interactionUseCase) actor(ctx context.Context, userID string) error {
	actor, err := uc.interactionRepo.GetActor(ctx, userID)
	if err != nil {
		return err
	}
	if actor.IsDeleted {
		return fmt.Errorf("user %s: %w", userID, entity.ErrGone)
	}
	if actor.IsBanned {
		return fmt.Errorf("user %s is banned: %w", userID, entity.ErrForbidden)
	}
	return nil
}

// activeVideo rejects unknown and deactivated videos.
func (uc *interactionUseCase) activeVideo(ctx context.Context, videoID string) error {
	video, err := uc.interactionRepo.GetVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if !video.IsActive {
		return fmt.Errorf("video %s is inactive: %w", videoID, entity.ErrInvalidState)
	}
	return nil
}

func (uc *interactionUseCase) RecordView(ctx context.Context, userID, videoID string, watchedPercentage float64, reaction *string) (*entity.View, error) {
	defer metrics.ObserveOperation("interaction.record_view", time.Now())

	if watchedPercentage < 0 || watchedPercentage > 1 {
		return nil, uc.fail("interaction.record_view", fmt.Errorf("watched_percentage must be within [0, 1]: %w", entity.ErrInvalidState))
	}
	if reaction != nil && *reaction != entity.ReactionLiked && *reaction != entity.ReactionDisliked {
		return nil, uc.fail("interaction.record_view", fmt.Errorf("unknown reaction %q: %w", *reaction, entity.ErrInvalidState))
	}
	if err := uc.actor(ctx, userID); err != nil {
		return nil, uc.fail("interaction.record_view", err)
	}
	if err := uc.activeVideo(ctx, videoID); err != nil {
		return nil, uc.fail("interaction.record_view", err)
	}

	view := &entity.View{
		UserID:            userID,
		VideoID:           videoID,
		WatchedPercentage: watchedPercentage,
		Reaction:          reaction,
		WatchedAt:         uc.clock.Now(),
	}
	if err := uc.interactionRepo.UpsertView(ctx, view); err != nil {
		return nil, uc.fail("interaction.record_view", err)
	}
	return view, nil
}

func (uc *interactionUseCase) AddComment(ctx context.Context, userID, videoID, text string) (*entity.Comment, error) {
	defer metrics.ObserveOperation("interaction.add_comment", time.Now())

	text = strings.TrimSpace(text)
	if text == "" || len(text) > MaxCommentLength {
		return nil, uc.fail("interaction.add_comment", fmt.Errorf("comment must be 1-%d characters: %w", MaxCommentLength, entity.ErrInvalidState))
	}
	if err := uc.actor(ctx, userID); err != nil {
		return nil, uc.fail("interaction.add_comment", err)
	}
	if err := uc.activeVideo(ctx, videoID); err != nil {
		return nil, uc.fail("interaction.add_comment", err)
	}

	comment, err := uc.interactionRepo.CreateComment(ctx, userID, videoID, text, uc.clock.Now())
	if err != nil {
		return nil, uc.fail("interaction.add_comment", err)
	}
	return comment, nil
}

// FileReport accepts reports on inactive videos too; a deactivated video is
// often the subject of the report.
func (uc *interactionUseCase) FileReport(ctx context.Context, userID, videoID, reason string) (*entity.Report, error) {
	defer metrics.ObserveOperation("interaction.file_report", time.Now())

	reason = strings.TrimSpace(reason)
	if reason == "" || len(reason) > MaxReasonLength {
		return nil, uc.fail("interaction.file_report", fmt.Errorf("reason must be 1-%d characters: %w", MaxReasonLength, entity.ErrInvalidState))
	}
	if err := uc.actor(ctx, userID); err != nil {
		return nil, uc.fail("interaction.file_report", err)
	}
	if _, err := uc.interactionRepo.GetVideo(ctx, videoID); err != nil {
		return nil, uc.fail("interaction.file_report", err)
	}

	if uc.throttle != nil {
		allowed, err := uc.throttle.Allow(ctx, userID, videoID)
		switch {
		case err != nil:
			uc.logger.Warn("Report throttle unavailable, accepting report: %v", err)
		case !allowed:
			return nil, uc.fail("interaction.file_report", fmt.Errorf("video %s already reported recently: %w", videoID, entity.ErrInvalidState))
		}
	}

	report, err := uc.interactionRepo.CreateReport(ctx, userID, videoID, reason, uc.clock.Now())
	if err != nil {
		return nil, uc.fail("interaction.file_report", err)
	}
	return report, nil
}

func (uc *interactionUseCase) channel(ctx context.Context, channelID string) error {
	exists, err := uc.interactionRepo.ChannelExists(ctx, channelID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("channel %s: %w", channelID, entity.ErrNotFound)
	}
	return nil
}

func (uc *interactionUseCase) Subscribe(ctx context.Context, userID, channelID string) (*entity.Subscription, error) {
	defer metrics.ObserveOperation("interaction.subscribe", time.Now())

	if err := uc.actor(ctx, userID); err != nil {
		return nil, uc.fail("interaction.subscribe", err)
	}
	if err := uc.channel(ctx, channelID); err != nil {
		return nil, uc.fail("interaction.subscribe", err)
	}
	if err := uc.interactionRepo.Subscribe(ctx, userID, channelID, uc.clock.Now()); err != nil {
		return nil, uc.fail("interaction.subscribe", err)
	}
	return &entity.Subscription{UserID: userID, ChannelID: channelID, IsActive: true}, nil
}

func (uc *interactionUseCase) Unsubscribe(ctx context.Context, userID, channelID string) (*entity.Subscription, error) {
	defer metrics.ObserveOperation("interaction.unsubscribe", time.Now())

	if err := uc.actor(ctx, userID); err != nil {
		return nil, uc.fail("interaction.unsubscribe", err)
	}
	if err := uc.interactionRepo.Unsubscribe(ctx, userID, channelID); err != nil {
		return nil, uc.fail("interaction.unsubscribe", err)
	}
	return &entity.Subscription{UserID: userID, ChannelID: channelID, IsActive: false}, nil
}

func (uc *interactionUseCase) fail(operation string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, entity.ErrNotFound):
		kind = "not_found"
	case errors.Is(err, entity.ErrGone):
		kind = "gone"
	case errors.Is(err, entity.ErrInvalidState):
		kind = "invalid_state"
	case errors.Is(err, entity.ErrForbidden):
		kind = "forbidden"
	}
	metrics.AnalyticsOperationErrors.WithLabelValues(operation, kind).Inc()
	if kind == "internal" {
		uc.logger.Error("%s failed: %v", operation, err)
	}
	return err
}
