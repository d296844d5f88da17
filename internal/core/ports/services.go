package ports

import (
	"context"
	"net/http"

	"wallet-settings/internal/core/domain"
)

// ChannelLocaleGet is the IPC channel answering with the user's country code.
const ChannelLocaleGet = "locale-get"

// --- Collaborator Ports (consumed by the setting coordinator) ---

// ExchangeRateService refreshes the cached BTC price for a fiat currency.
// The coordinator runs it as a detached effect and never inspects the error.
type ExchangeRateService interface {
	GetExchangeRate(ctx context.Context, fiat domain.Fiat) error
}

// PersistenceService persists a full settings snapshot.
// The coordinator runs it as a detached effect and never inspects the error.
type PersistenceService interface {
	Save(ctx context.Context, settings domain.Settings) error
}

// LocaleTransport sends a request over an IPC channel and waits for the reply.
// For ChannelLocaleGet the reply is a lower-case two-letter country code.
type LocaleTransport interface {
	Send(ctx context.Context, channel string, args ...string) (string, error)
}

// DaemonClient issues commands to the wallet daemon.
type DaemonClient interface {
	// SendAutopilotCommand returns nil once the daemon confirmed the new state.
	SendAutopilotCommand(ctx context.Context, enabled bool) error
}

// NotificationService presents alerts to the user. Fire-and-forget.
type NotificationService interface {
	Display(ctx context.Context, n domain.Notification)
}

// TickerClient fetches the current BTC price in a fiat currency.
type TickerClient interface {
	FetchRate(ctx context.Context, fiat domain.Fiat) (float64, error)
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// --- Service Ports (Business Logic) ---

// SettingService validates, applies, persists and compensates settings changes.
type SettingService interface {
	// SetBitcoinUnit fails with an invalid-input error before any mutation.
	SetBitcoinUnit(ctx context.Context, unit string) error
	// SetFiatCurrency fails with an invalid-input error before any mutation.
	SetFiatCurrency(ctx context.Context, fiat string) error
	// DetectLocalCurrency never fails; collaborator errors are logged.
	DetectLocalCurrency(ctx context.Context)
	SetRestoringWallet(restoring bool)
	// ToggleAutopilot never fails; a rejected daemon command is reverted and
	// surfaced as a notification.
	ToggleAutopilot(ctx context.Context)
	Settings() domain.Settings
}

// RateService exposes cached exchange rates alongside the refresh port.
type RateService interface {
	ExchangeRateService
	// Rate returns the cached BTC price; ok is false when nothing is cached.
	Rate(ctx context.Context, fiat domain.Fiat) (price float64, ok bool, err error)
}

// AuditService records settings changes. Fire-and-forget.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
