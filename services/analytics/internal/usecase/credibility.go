package usecase

import (
	"context"
	"fmt"
	"time"

	"vidstream/pkg/metrics"
	"vidstream/services/analytics/internal/entity"
)

func (uc *analyticsUseCase) UserCredibility(ctx context.Context, userID string) (*entity.Credibility, error) {
	const op = "user_credibility"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, uc.fail(op, err)
	}

	total, resolved, err := uc.analyticsRepo.GetReporterStats(ctx, userID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to aggregate reports: %w", err))
	}

	return &entity.Credibility{
		UserID:          userID,
		TotalReports:    total,
		ApprovedReports: resolved,
		Score:           CredibilityScore(resolved, total),
	}, nil
}

// CredibilityScore treats a resolved report as a valid one.
func CredibilityScore(resolved, total int64) float64 {
	return Percentage(resolved, total)
}

func (uc *analyticsUseCase) ProblematicReporters(ctx context.Context, minReports int64, skip, limit int) ([]*entity.ProblematicReporter, error) {
	const op = "problematic_reporters"
	defer metrics.ObserveOperation(op, time.Now())

	reporters, err := uc.analyticsRepo.ListProblematicReporters(ctx, minReports, skip, limit)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list reporters: %w", err))
	}
	return reporters, nil
}
