package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpHandler "wallet-settings/internal/adapter/http/handler"
	"wallet-settings/internal/adapter/lnd"
	pgStorage "wallet-settings/internal/adapter/storage/postgres"
	redisStorage "wallet-settings/internal/adapter/storage/redis"
	"wallet-settings/internal/adapter/ticker"
	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/internal/service"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var detectFiat bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the settings HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), detectFiat)
		},
	}
	cmd.Flags().BoolVar(&detectFiat, "detect-fiat", false, "detect the local fiat currency on startup")
	return cmd
}

func serve(ctx context.Context, detectFiat bool) error {
	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting wallet settings service")

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	// Repositories and Redis stores
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	rateCache := redisStorage.NewRateCache(rdb)
	queue := redisStorage.NewNotificationQueue(rdb, cfg.Notify.Capacity)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Outbound clients
	tickerClient := ticker.NewClient(&http.Client{Timeout: cfg.Exchange.Timeout}, cfg.Exchange.TickerURL)
	daemon := lnd.NewAutopilotClient(&http.Client{Timeout: cfg.Daemon.Timeout}, cfg.Daemon.RESTURL, cfg.Daemon.MacaroonHex)
	bus := newLocaleBus(&http.Client{Timeout: cfg.Locale.Timeout})

	// Services
	store := domain.NewStore(domain.DefaultSettings())
	effects := service.NewDetached(cfg.Effects.Timeout, log)
	rates := service.NewExchangeService(tickerClient, rateCache, cfg.Exchange.CacheTTL, log)
	settings := service.NewSettingService(
		store,
		rates,
		settingsRepo,
		bus,
		daemon,
		service.NewNotificationService(queue, log),
		effects,
		log,
	)
	auditSvc := service.NewAuditService(auditRepo, log)

	refresher, err := service.NewRateRefresher(store, rates, cfg.Exchange.RefreshSchedule, cfg.Exchange.Timeout, log)
	if err != nil {
		return err
	}
	refresher.Start()
	defer refresher.Stop()

	if detectFiat {
		settings.DetectLocalCurrency(ctx)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SettingSvc:     settings,
		RateSvc:        rates,
		Notifications:  queue,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Saves and rate refreshes started by the last requests still need the
	// pool and Redis client.
	effects.Wait()

	log.Info().Msg("Server exited")
	return nil
}
