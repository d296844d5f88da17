package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-settings/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultNotificationCapacity bounds the queue when no capacity is configured.
const DefaultNotificationCapacity = 100

// NotificationQueue implements ports.NotificationQueue as a capped Redis list,
// newest first.
type NotificationQueue struct {
	client   goredis.UniversalClient
	capacity int64
}

func NewNotificationQueue(client goredis.UniversalClient, capacity int64) *NotificationQueue {
	if capacity <= 0 {
		capacity = DefaultNotificationCapacity
	}
	return &NotificationQueue{client: client, capacity: capacity}
}

// Push prepends n and drops entries beyond capacity.
func (q *NotificationQueue) Push(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	_, err = q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LPush(ctx, notificationsKey, payload)
		pipe.LTrim(ctx, notificationsKey, 0, q.capacity-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis push notification: %w", err)
	}
	return nil
}

// Recent returns up to limit notifications, newest first.
func (q *NotificationQueue) Recent(ctx context.Context, limit int64) ([]domain.Notification, error) {
	if limit <= 0 || limit > q.capacity {
		limit = q.capacity
	}

	raw, err := q.client.LRange(ctx, notificationsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list notifications: %w", err)
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}
