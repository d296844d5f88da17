package ports

import (
	"context"
	"time"

	"wallet-settings/internal/core/domain"
)

// SettingsRepository persists settings snapshots.
type SettingsRepository interface {
	Save(ctx context.Context, settings domain.Settings) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// RateCache holds fetched BTC prices keyed by fiat.
type RateCache interface {
	// Get returns ok=false when the rate is missing or expired.
	Get(ctx context.Context, fiat domain.Fiat) (price float64, ok bool, err error)
	Set(ctx context.Context, fiat domain.Fiat, price float64, ttl time.Duration) error
}

// NotificationQueue keeps the most recent notifications for the UI.
type NotificationQueue interface {
	Push(ctx context.Context, n domain.Notification) error
	Recent(ctx context.Context, limit int64) ([]domain.Notification, error)
}
