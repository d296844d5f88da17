package service

import (
	"context"
	"time"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type notificationService struct {
	queue ports.NotificationQueue
	log   zerolog.Logger
}

// NewNotificationService creates the notification service. If queue is nil,
// notifications are only written to the logger.
func NewNotificationService(queue ports.NotificationQueue, log zerolog.Logger) ports.NotificationService {
	return &notificationService{queue: queue, log: logger.Component(log, "notification")}
}

// Display stamps n and enqueues it for the client to pick up.
func (s *notificationService) Display(ctx context.Context, n domain.Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if n.Type == "" {
		n.Type = domain.NotificationInfo
	}

	// Trace only; the user sees the queued notification.
	s.log.Debug().
		Str("notification_id", n.ID.String()).
		Str("type", string(n.Type)).
		Str("detail", n.Detail).
		Msg(n.Message)

	if s.queue == nil {
		return
	}
	if err := s.queue.Push(ctx, n); err != nil {
		s.log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("failed to enqueue notification")
	}
}
