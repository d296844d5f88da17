package service

import (
	"context"
	"fmt"
	"time"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/logger"

	cronlib "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultRefreshSchedule refreshes the exchange rate every quarter hour.
const DefaultRefreshSchedule = "@every 15m"

// RateRefresher periodically refreshes the exchange rate of the currently
// selected fiat currency.
type RateRefresher struct {
	store     *domain.Store
	exchange  ports.ExchangeRateService
	scheduler *cronlib.Cron
	timeout   time.Duration
	log       zerolog.Logger
}

// NewRateRefresher registers the refresh job on schedule. The scheduler does
// not run until Start.
func NewRateRefresher(store *domain.Store, exchange ports.ExchangeRateService, schedule string, timeout time.Duration, log zerolog.Logger) (*RateRefresher, error) {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	r := &RateRefresher{
		store:     store,
		exchange:  exchange,
		scheduler: cronlib.New(),
		timeout:   timeout,
		log:       logger.Component(log, "rate_refresher"),
	}

	if _, err := r.scheduler.AddFunc(schedule, func() {
		_ = r.RefreshNow(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// RefreshNow requests a rate for the current fiat.
func (r *RateRefresher) RefreshNow(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	fiat := r.store.Settings().Fiat
	if err := r.exchange.GetExchangeRate(ctx, fiat); err != nil {
		r.log.Warn().Err(err).Str("fiat", fiat.String()).Msg("scheduled rate refresh failed")
		return err
	}
	return nil
}

func (r *RateRefresher) Start() {
	r.scheduler.Start()
	r.log.Info().Msg("rate refresher started")
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (r *RateRefresher) Stop() {
	<-r.scheduler.Stop().Done()
	r.log.Info().Msg("rate refresher stopped")
}
