package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited settings change.
type AuditAction string

const (
	AuditActionSetUnit         AuditAction = "SET_UNIT"
	AuditActionSetFiat         AuditAction = "SET_FIAT"
	AuditActionDetectFiat      AuditAction = "DETECT_FIAT"
	AuditActionSetRestoring    AuditAction = "SET_RESTORING"
	AuditActionToggleAutopilot AuditAction = "TOGGLE_AUTOPILOT"
)

// AuditLog records a single settings change made through the API.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	Action    AuditAction `json:"action"`
	Setting   string      `json:"setting"`
	Details   string      `json:"details,omitempty"` // JSON string
	IPAddress string      `json:"ip_address"`
	CreatedAt time.Time   `json:"created_at"`
}
