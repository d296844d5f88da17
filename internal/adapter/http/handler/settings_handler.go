package handler

import (
	"wallet-settings/internal/adapter/http/dto"
	"wallet-settings/internal/adapter/http/middleware"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/apperror"
	"wallet-settings/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the setting coordinator.
type SettingsHandler struct {
	svc ports.SettingService
}

func NewSettingsHandler(svc ports.SettingService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get handles GET /api/v1/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	response.OK(c, dto.NewSettingsResponse(h.svc.Settings()))
}

// SetUnit handles PUT /api/v1/settings/unit.
func (h *SettingsHandler) SetUnit(c *gin.Context) {
	var req dto.SetUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.svc.SetBitcoinUnit(c.Request.Context(), req.Unit); err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditDetails, req.Unit)
	response.OK(c, dto.NewSettingsResponse(h.svc.Settings()))
}

// SetFiat handles PUT /api/v1/settings/fiat.
func (h *SettingsHandler) SetFiat(c *gin.Context) {
	var req dto.SetFiatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.svc.SetFiatCurrency(c.Request.Context(), req.Fiat); err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditDetails, req.Fiat)
	response.OK(c, dto.NewSettingsResponse(h.svc.Settings()))
}

// DetectFiat handles POST /api/v1/settings/fiat/detect. Detection failures
// are logged by the coordinator; the response always carries the resulting
// settings.
func (h *SettingsHandler) DetectFiat(c *gin.Context) {
	h.svc.DetectLocalCurrency(c.Request.Context())

	s := h.svc.Settings()
	c.Set(middleware.CtxAuditDetails, s.Fiat.String())
	response.OK(c, dto.NewSettingsResponse(s))
}

// SetRestoring handles PUT /api/v1/settings/restoring.
func (h *SettingsHandler) SetRestoring(c *gin.Context) {
	var req dto.SetRestoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.svc.SetRestoringWallet(*req.Restoring)

	c.Set(middleware.CtxAuditDetails, *req.Restoring)
	response.OK(c, dto.NewSettingsResponse(h.svc.Settings()))
}

// ToggleAutopilot handles POST /api/v1/settings/autopilot/toggle. A rejected
// toggle is reverted and reported through notifications, so the response is
// 200 either way with the settled value.
func (h *SettingsHandler) ToggleAutopilot(c *gin.Context) {
	h.svc.ToggleAutopilot(c.Request.Context())

	s := h.svc.Settings()
	c.Set(middleware.CtxAuditDetails, s.Autopilot)
	response.OK(c, dto.NewSettingsResponse(s))
}
