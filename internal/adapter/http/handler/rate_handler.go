package handler

import (
	"wallet-settings/internal/adapter/http/dto"
	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/apperror"
	"wallet-settings/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateHandler serves cached exchange rates and amount conversion.
type RateHandler struct {
	rates    ports.RateService
	settings ports.SettingService
}

func NewRateHandler(rates ports.RateService, settings ports.SettingService) *RateHandler {
	return &RateHandler{rates: rates, settings: settings}
}

// GetRate handles GET /api/v1/rates/:fiat.
func (h *RateHandler) GetRate(c *gin.Context) {
	raw := c.Param("fiat")
	fiat, err := domain.ParseFiat(raw)
	if err != nil {
		response.Error(c, apperror.ErrInvalidFiat(raw, err))
		return
	}

	price, ok, err := h.rates.Rate(c.Request.Context(), fiat)
	if err != nil {
		response.Error(c, apperror.ErrCacheError(err))
		return
	}
	if !ok {
		response.Error(c, apperror.ErrNotFound("Exchange rate"))
		return
	}

	response.OK(c, dto.RateResponse{
		Fiat:   fiat.String(),
		Symbol: fiat.Symbol(),
		Price:  price,
	})
}

// Convert handles GET /api/v1/convert?sat=N.
func (h *RateHandler) Convert(c *gin.Context) {
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	s := h.settings.Settings()
	out := dto.ConvertResponse{
		Sat:    *q.Sat,
		Unit:   s.Unit.String(),
		Amount: s.Unit.FromSatoshis(*q.Sat),
		Fiat:   s.Fiat.String(),
	}

	price, ok, err := h.rates.Rate(c.Request.Context(), s.Fiat)
	if err != nil {
		response.Error(c, apperror.ErrCacheError(err))
		return
	}
	if ok {
		v := domain.FiatValue(*q.Sat, price)
		out.FiatValue = &v
	}

	response.OK(c, out)
}
