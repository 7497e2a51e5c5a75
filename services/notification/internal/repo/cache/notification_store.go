package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidstream/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	maxStored = 100
	retention = 30 * 24 * time.Hour
)

// NotificationStore keeps the newest notifications per user in a capped
// Redis list and fans each new one out on a pub/sub channel of the same
// name.
type NotificationStore struct {
	client *redis.Client
}

func NewNotificationStore(client *redis.Client) *NotificationStore {
	return &NotificationStore{client: client}
}

func notificationsKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (s *NotificationStore) Push(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := notificationsKey(n.UserID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, maxStored-1)
	pipe.Expire(ctx, key, retention)
	pipe.Publish(ctx, key, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification for %s: %w", n.UserID, err)
	}
	return nil
}

// List returns a page of notifications, newest first, and the stored total.
// Entries that no longer decode are skipped.
func (s *NotificationStore) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	key := notificationsKey(userID)

	raw, err := s.client.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}
	total, err := s.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, total, nil
}
