package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wallet-settings/internal/adapter/storage/redis"
	"wallet-settings/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotification(msg string) domain.Notification {
	return domain.Notification{
		ID:        uuid.New(),
		Type:      domain.NotificationError,
		Message:   msg,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNotificationQueue_PushRecent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	q := redis.NewNotificationQueue(client, 10)
	ctx := context.Background()

	first := newNotification("first")
	second := newNotification("second")
	require.NoError(t, q.Push(ctx, first))
	require.NoError(t, q.Push(ctx, second))

	got, err := q.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second, got[0], "newest first")
	assert.Equal(t, first, got[1])

	got, err = q.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Message)
}

func TestNotificationQueue_Capacity(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	q := redis.NewNotificationQueue(client, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(ctx, newNotification(fmt.Sprintf("n%d", i))))
	}

	got, err := q.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "n4", got[0].Message)
	assert.Equal(t, "n2", got[2].Message)
}

func TestNotificationQueue_Empty(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	got, err := redis.NewNotificationQueue(client, 0).Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	hc := redis.NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	mr.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
