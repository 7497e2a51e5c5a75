package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportThrottle lets a user report a given video at most once per window.
type ReportThrottle struct {
	client *redis.Client
	window time.Duration
}

func NewReportThrottle(client *redis.Client, window time.Duration) *ReportThrottle {
	return &ReportThrottle{client: client, window: window}
}

func reportKey(reporterID, videoID string) string {
	return fmt.Sprintf("report_filed:%s:%s", videoID, reporterID)
}

// Allow claims the reporter's slot for the video. It returns false while an
// earlier claim is still live.
func (t *ReportThrottle) Allow(ctx context.Context, reporterID, videoID string) (bool, error) {
	return t.client.SetNX(ctx, reportKey(reporterID, videoID), "1", t.window).Result()
}
