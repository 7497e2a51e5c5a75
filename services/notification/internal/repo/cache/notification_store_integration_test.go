//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vidstream/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNotificationStore_PushAndList(t *testing.T) {
	client := startRedis(t)
	store := NewNotificationStore(client)
	ctx := context.Background()

	sub := client.Subscribe(ctx, notificationsKey("user-1"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	at := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < maxStored+5; i++ {
		require.NoError(t, store.Push(ctx, &entity.Notification{
			UserID:    "user-1",
			Title:     fmt.Sprintf("notice %d", i),
			Type:      entity.TypeStrike,
			CreatedAt: at,
		}))
	}

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Contains(t, msg.Payload, `"title":"notice 0"`)

	page, total, err := store.List(ctx, "user-1", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(maxStored), total)
	require.Len(t, page, 3)
	assert.Equal(t, fmt.Sprintf("notice %d", maxStored+4), page[0].Title)
	assert.True(t, at.Equal(page[0].CreatedAt))

	ttl, err := client.TTL(ctx, notificationsKey("user-1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 29*24*time.Hour)
}

func TestNotificationStore_ListEmpty(t *testing.T) {
	store := NewNotificationStore(startRedis(t))

	page, total, err := store.List(context.Background(), "nobody", 10, 0)

	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Zero(t, total)
}
