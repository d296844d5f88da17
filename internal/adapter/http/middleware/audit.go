package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxAuditDetails lets a handler attach the applied value to the audit entry.
const CtxAuditDetails = "audit_details"

// AuditLog records successful settings writes. Reads and failed requests are
// not audited.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, setting := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		}
		if extra, ok := c.Get(CtxAuditDetails); ok {
			fields["value"] = extra
		}
		details, _ := json.Marshal(fields)

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:        uuid.New(),
			Action:    action,
			Setting:   setting,
			IPAddress: c.ClientIP(),
			Details:   string(details),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/settings/unit" && method == http.MethodPut:
		return domain.AuditActionSetUnit, "unit"
	case path == "/api/v1/settings/fiat" && method == http.MethodPut:
		return domain.AuditActionSetFiat, "fiat"
	case path == "/api/v1/settings/fiat/detect" && method == http.MethodPost:
		return domain.AuditActionDetectFiat, "fiat"
	case path == "/api/v1/settings/restoring" && method == http.MethodPut:
		return domain.AuditActionSetRestoring, "restoring"
	case path == "/api/v1/settings/autopilot/toggle" && method == http.MethodPost:
		return domain.AuditActionToggleAutopilot, "autopilot"
	}
	return "", ""
}
