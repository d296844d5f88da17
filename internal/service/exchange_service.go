package service

import (
	"context"
	"fmt"
	"time"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/logger"

	"github.com/rs/zerolog"
)

// DefaultRateTTL is used when no cache TTL is configured.
const DefaultRateTTL = 15 * time.Minute

type exchangeService struct {
	ticker ports.TickerClient
	cache  ports.RateCache
	ttl    time.Duration
	log    zerolog.Logger
}

// NewExchangeService creates the exchange-rate service backed by a ticker and
// a rate cache.
func NewExchangeService(ticker ports.TickerClient, cache ports.RateCache, ttl time.Duration, log zerolog.Logger) ports.RateService {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	return &exchangeService{
		ticker: ticker,
		cache:  cache,
		ttl:    ttl,
		log:    logger.Component(log, "exchange"),
	}
}

// GetExchangeRate fetches the current BTC price in fiat and caches it.
func (s *exchangeService) GetExchangeRate(ctx context.Context, fiat domain.Fiat) error {
	price, err := s.ticker.FetchRate(ctx, fiat)
	if err != nil {
		return fmt.Errorf("fetch %s rate: %w", fiat, err)
	}

	if err := s.cache.Set(ctx, fiat, price, s.ttl); err != nil {
		return fmt.Errorf("cache %s rate: %w", fiat, err)
	}

	s.log.Debug().Str("fiat", fiat.String()).Float64("price", price).Msg("exchange rate updated")
	return nil
}

func (s *exchangeService) Rate(ctx context.Context, fiat domain.Fiat) (float64, bool, error) {
	return s.cache.Get(ctx, fiat)
}
