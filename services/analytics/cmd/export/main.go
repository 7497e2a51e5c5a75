// Command export computes the channel risk report and uploads it to S3 as
// reports/channel-risk/<YYYY-MM-DD>.json.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"vidstream/pkg/clock"
	"vidstream/pkg/config"
	"vidstream/pkg/database"
	"vidstream/pkg/logger"
	"vidstream/pkg/s3"
	"vidstream/services/analytics/internal/entity"
	"vidstream/services/analytics/internal/repo/persistent"
	"vidstream/services/analytics/internal/usecase"
)

type riskReporter interface {
	ChannelsRiskReport(ctx context.Context, minReports int64, limit int) ([]*entity.ChannelRiskProfile, error)
}

type objectStore interface {
	PutJSON(ctx context.Context, key string, body []byte) (string, error)
}

type riskReport struct {
	GeneratedAt time.Time                    `json:"generated_at"`
	MinReports  int64                        `json:"min_reports"`
	Channels    []*entity.ChannelRiskProfile `json:"channels"`
}

func reportKey(at time.Time) string {
	return fmt.Sprintf("reports/channel-risk/%s.json", at.UTC().Format("2006-01-02"))
}

func exportRiskReport(ctx context.Context, reporter riskReporter, store objectStore, clk clock.Clock, minReports int64, limit int) (string, error) {
	profiles, err := reporter.ChannelsRiskReport(ctx, minReports, limit)
	if err != nil {
		return "", fmt.Errorf("failed to build risk report: %w", err)
	}

	now := clk.Now()
	body, err := json.MarshalIndent(riskReport{
		GeneratedAt: now,
		MinReports:  minReports,
		Channels:    profiles,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode risk report: %w", err)
	}

	return store.PutJSON(ctx, reportKey(now), body)
}

func main() {
	var (
		minReports = flag.Int64("min-reports", 1, "only include channels with at least this many reports")
		limit      = flag.Int("limit", 20, "maximum number of channels in the report")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall deadline for the export")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewWithConfig(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With("service", "analytics-export")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	store, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		log.Error("Failed to prepare bucket: %v", err)
		os.Exit(1)
	}

	uc := usecase.NewAnalyticsUseCase(persistent.NewAnalyticsRepository(db), clock.Real{}, log)

	location, err := exportRiskReport(ctx, uc, store, clock.Real{}, *minReports, *limit)
	if err != nil {
		log.Error("Export failed: %v", err)
		os.Exit(1)
	}
	log.Info("Channel risk report uploaded to %s", location)
}
