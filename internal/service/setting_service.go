package service

import (
	"context"
	"sync"
	"time"

	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/apperror"
	"wallet-settings/pkg/logger"

	"github.com/rs/zerolog"
)

const (
	msgDetectFailed    = "Detecting local currency failed"
	msgToggleAutopilot = "Toggling autopilot failed"
)

// settingService implements ports.SettingService.
type settingService struct {
	store    *domain.Store
	exchange ports.ExchangeRateService
	db       ports.PersistenceService
	ipc      ports.LocaleTransport
	daemon   ports.DaemonClient
	notify   ports.NotificationService
	effects  *Detached
	log      zerolog.Logger

	// autopilotMu serializes overlapping toggles so each one reads the value
	// settled by the previous.
	autopilotMu sync.Mutex

	// saveMu keeps snapshot order and save queue order identical.
	saveMu sync.Mutex
}

// NewSettingService creates the setting coordinator. store is owned by the
// returned service from here on.
func NewSettingService(
	store *domain.Store,
	exchange ports.ExchangeRateService,
	db ports.PersistenceService,
	ipc ports.LocaleTransport,
	daemon ports.DaemonClient,
	notify ports.NotificationService,
	effects *Detached,
	log zerolog.Logger,
) ports.SettingService {
	return &settingService{
		store:    store,
		exchange: exchange,
		db:       db,
		ipc:      ipc,
		daemon:   daemon,
		notify:   notify,
		effects:  effects,
		log:      logger.Component(log, "setting"),
	}
}

// SetBitcoinUnit validates and applies the display unit, then saves.
func (s *settingService) SetBitcoinUnit(ctx context.Context, raw string) error {
	unit, err := domain.ParseUnit(raw)
	if err != nil {
		return apperror.ErrInvalidUnit(raw, err)
	}

	s.store.SetUnit(unit)
	s.save(ctx)
	return nil
}

// SetFiatCurrency validates and applies the fiat currency, refreshes its
// exchange rate and saves.
func (s *settingService) SetFiatCurrency(ctx context.Context, raw string) error {
	fiat, err := domain.ParseFiat(raw)
	if err != nil {
		return apperror.ErrInvalidFiat(raw, err)
	}

	s.applyFiat(ctx, fiat)
	return nil
}

// DetectLocalCurrency asks the IPC transport for the user's country and
// derives the fiat currency from it. Unsupported countries fall back to the
// default currency without persisting it.
func (s *settingService) DetectLocalCurrency(ctx context.Context) {
	country, err := s.ipc.Send(ctx, ports.ChannelLocaleGet)
	if err != nil {
		s.log.Error().Err(err).Msg(msgDetectFailed)
		return
	}

	fiat, err := domain.LocalFiat(country)
	if err != nil {
		code, _ := domain.CurrencyForCountry(country)
		s.store.SetFiat(domain.DefaultFiat)
		s.log.Error().
			Err(apperror.ErrInvalidFiat(code, err)).
			Str("country", country).
			Msg(msgDetectFailed)
		return
	}

	s.applyFiat(ctx, fiat)
}

// SetRestoringWallet marks the restore-from-seed workflow. Session-only: the
// flag is never persisted.
func (s *settingService) SetRestoringWallet(restoring bool) {
	s.store.SetRestoring(restoring)
}

// ToggleAutopilot flips autopilot optimistically and reverts it if the daemon
// rejects the command.
func (s *settingService) ToggleAutopilot(ctx context.Context) {
	s.autopilotMu.Lock()
	defer s.autopilotMu.Unlock()

	tr := domain.BeginAutopilotToggle(s.store)

	if err := s.daemon.SendAutopilotCommand(ctx, tr.Target()); err != nil {
		_ = tr.Revert()
		s.notify.Display(ctx, domain.Notification{
			Type:      domain.NotificationError,
			Message:   msgToggleAutopilot,
			Detail:    err.Error(),
			CreatedAt: time.Now().UTC(),
		})
		return
	}

	_ = tr.Confirm()
}

func (s *settingService) Settings() domain.Settings {
	return s.store.Settings()
}

func (s *settingService) applyFiat(ctx context.Context, fiat domain.Fiat) {
	s.store.SetFiat(fiat)
	s.effects.Go(ctx, "exchange_rate", func(ctx context.Context) error {
		return s.exchange.GetExchangeRate(ctx, fiat)
	})
	s.save(ctx)
}

// save queues a write of the current snapshot. Saves run one at a time in the
// order they were issued, so the last write always carries the newest
// snapshot.
func (s *settingService) save(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	snapshot := s.store.Settings()
	s.effects.GoOrdered(ctx, "save_settings", func(ctx context.Context) error {
		return s.db.Save(ctx, snapshot)
	})
}
