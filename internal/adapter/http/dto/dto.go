package dto

import (
	"time"

	"wallet-settings/internal/core/domain"
)

// SetUnitRequest is the request body for changing the display unit.
type SetUnitRequest struct {
	Unit string `json:"unit" binding:"required,max=16,setting_code"`
}

// SetFiatRequest is the request body for changing the fiat currency.
type SetFiatRequest struct {
	Fiat string `json:"fiat" binding:"required,max=16,setting_code"`
}

// SetRestoringRequest is the request body for the restore-wallet flag.
type SetRestoringRequest struct {
	Restoring *bool `json:"restoring" binding:"required"`
}

// NotificationsQuery bounds the notification listing.
type NotificationsQuery struct {
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ConvertQuery is the query string of the conversion endpoint.
type ConvertQuery struct {
	Sat *int64 `form:"sat" binding:"required"`
}

// SettingsResponse is the settings snapshot as served to clients.
type SettingsResponse struct {
	Unit            string `json:"unit"`
	UnitDisplay     string `json:"unit_display"`
	UnitDisplayLong string `json:"unit_display_long"`
	Fiat            string `json:"fiat"`
	FiatSymbol      string `json:"fiat_symbol"`
	FiatName        string `json:"fiat_name"`
	Restoring       bool   `json:"restoring"`
	Autopilot       bool   `json:"autopilot"`
}

// NewSettingsResponse expands a snapshot with unit and currency metadata.
func NewSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Unit:            s.Unit.String(),
		UnitDisplay:     s.Unit.Display(),
		UnitDisplayLong: s.Unit.DisplayLong(),
		Fiat:            s.Fiat.String(),
		FiatSymbol:      s.Fiat.Symbol(),
		FiatName:        s.Fiat.Name(),
		Restoring:       s.Restoring,
		Autopilot:       s.Autopilot,
	}
}

// RateResponse is a cached BTC price.
type RateResponse struct {
	Fiat   string  `json:"fiat"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// ConvertResponse renders a satoshi amount in the current unit and fiat.
// FiatValue is nil when no exchange rate is cached.
type ConvertResponse struct {
	Sat       int64    `json:"sat"`
	Unit      string   `json:"unit"`
	Amount    string   `json:"amount"`
	Fiat      string   `json:"fiat"`
	FiatValue *float64 `json:"fiat_value"`
}

// NotificationResponse is a single queued notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Message:   n.Message,
		Detail:    n.Detail,
		CreatedAt: n.CreatedAt,
	}
}
