package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wallet-settings/internal/adapter/http/handler"
	"wallet-settings/internal/adapter/ipc"
	"wallet-settings/internal/adapter/lnd"
	redisStorage "wallet-settings/internal/adapter/storage/redis"
	"wallet-settings/internal/adapter/ticker"
	"wallet-settings/internal/core/domain"
	"wallet-settings/internal/core/ports"
	"wallet-settings/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSettingsRepo records every saved snapshot.
type memSettingsRepo struct {
	mu    sync.Mutex
	saves []domain.Settings
}

func (r *memSettingsRepo) Save(_ context.Context, s domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, s)
	return nil
}

func (r *memSettingsRepo) snapshot() []domain.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Settings(nil), r.saves...)
}

// testApp wires the real HTTP layer, services and Redis stores against
// miniredis, with the ticker and lnd gateway served by httptest.
type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	repo       *memSettingsRepo
	effects    *service.Detached
	settings   ports.SettingService
	lndRejects atomic.Bool
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{repo: &memSettingsRepo{}}
	app.redis = miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: app.redis.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	tickerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"USD":{"last":50000,"symbol":"$"},"EUR":{"last":46000,"symbol":"€"},"GBP":{"last":40000,"symbol":"£"}}`))
	}))
	t.Cleanup(tickerSrv.Close)

	lndSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.lndRejects.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":2,"message":"autopilot unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(lndSrv.Close)

	log := zerolog.Nop()
	httpClient := &http.Client{Timeout: 2 * time.Second}

	bus := ipc.NewBus()
	bus.Handle(ports.ChannelLocaleGet, ipc.StaticLocale("de"))

	app.effects = service.NewDetached(time.Second, log)
	queue := redisStorage.NewNotificationQueue(rdb, 50)
	rates := service.NewExchangeService(ticker.NewClient(httpClient, tickerSrv.URL), redisStorage.NewRateCache(rdb), time.Minute, log)
	app.settings = service.NewSettingService(
		domain.NewStore(domain.DefaultSettings()),
		rates,
		app.repo,
		bus,
		lnd.NewAutopilotClient(httpClient, lndSrv.URL, ""),
		service.NewNotificationService(queue, log),
		app.effects,
		log,
	)

	router := handler.SetupRouter(handler.RouterDeps{
		SettingSvc:     app.settings,
		RateSvc:        rates,
		Notifications:  queue,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       service.NewAuditService(nil, log),
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

func (a *testApp) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func TestRouter_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
}

func TestRouter_SetUnitPersists(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPut, "/api/v1/settings/unit", map[string]string{"unit": "sat"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "sat", data(t, body)["unit"])
	assert.NotEmpty(t, body["request_id"])

	app.effects.Wait()
	saves := app.repo.snapshot()
	require.Len(t, saves, 1)
	assert.Equal(t, domain.UnitSat, saves[0].Unit)
}

func TestRouter_InvalidUnitRejected(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPut, "/api/v1/settings/unit", map[string]string{"unit": "invalid"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SET_001", body["error_code"])

	app.effects.Wait()
	assert.Empty(t, app.repo.snapshot())

	_, body = app.do(t, http.MethodGet, "/api/v1/settings", nil)
	assert.Equal(t, "btc", data(t, body)["unit"])
}

func TestRouter_SetFiatRefreshesRate(t *testing.T) {
	app := newTestApp(t)

	code, _ := app.do(t, http.MethodPut, "/api/v1/settings/fiat", map[string]string{"fiat": "eur"})
	require.Equal(t, http.StatusOK, code)
	app.effects.Wait()

	code, body := app.do(t, http.MethodGet, "/api/v1/rates/eur", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 46000.0, data(t, body)["price"])

	code, body = app.do(t, http.MethodGet, "/api/v1/convert?sat=100000", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0.001", data(t, body)["amount"])
	assert.Equal(t, 46.0, data(t, body)["fiat_value"])

	code, body = app.do(t, http.MethodGet, "/api/v1/rates/gbp", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "SET_004", body["error_code"])
}

func TestRouter_DetectLocalCurrency(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPost, "/api/v1/settings/fiat/detect", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "eur", data(t, body)["fiat"])

	app.effects.Wait()
	require.Len(t, app.repo.snapshot(), 1)
}

func TestRouter_RestoringIsNotPersisted(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPut, "/api/v1/settings/restoring", map[string]bool{"restoring": true})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, data(t, body)["restoring"])

	app.effects.Wait()
	assert.Empty(t, app.repo.snapshot())
}

func TestRouter_ToggleAutopilot(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do(t, http.MethodPost, "/api/v1/settings/autopilot/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, data(t, body)["autopilot"])

	app.lndRejects.Store(true)
	code, body = app.do(t, http.MethodPost, "/api/v1/settings/autopilot/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, data(t, body)["autopilot"], "rejected toggle is reverted")

	code, body = app.do(t, http.MethodGet, "/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, code)
	items, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	n := items[0].(map[string]any)
	assert.Equal(t, "Toggling autopilot failed", n["message"])
	assert.Contains(t, n["detail"], "autopilot unavailable")
}

func TestRouter_AutopilotRateLimited(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 10; i++ {
		code, _ := app.do(t, http.MethodPost, "/api/v1/settings/autopilot/toggle", nil)
		require.Equal(t, http.StatusOK, code, "request %d", i+1)
	}

	code, body := app.do(t, http.MethodPost, "/api/v1/settings/autopilot/toggle", nil)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "RATE_001", body["error_code"])
}

func TestRouter_ConcurrentUnitChanges(t *testing.T) {
	app := newTestApp(t)

	units := []string{"sat", "bit", "btc"}
	var wg sync.WaitGroup
	for i := 0; i < 15; i++ {
		wg.Add(1)
		go func(unit string) {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPut, "/api/v1/settings/unit", map[string]string{"unit": unit})
			assert.Equal(t, http.StatusOK, code)
		}(units[i%len(units)])
	}
	wg.Wait()
	app.effects.Wait()

	saves := app.repo.snapshot()
	require.Len(t, saves, 15, "every accepted change is saved")
	assert.Equal(t, app.settings.Settings(), saves[len(saves)-1], "last write carries the final state")
}

func TestRouter_SequentialChangesPersistInOrder(t *testing.T) {
	app := newTestApp(t)

	for _, unit := range []string{"sat", "bit", "btc", "sat"} {
		code, _ := app.do(t, http.MethodPut, "/api/v1/settings/unit", map[string]string{"unit": unit})
		require.Equal(t, http.StatusOK, code)
	}
	code, _ := app.do(t, http.MethodPut, "/api/v1/settings/fiat", map[string]string{"fiat": "gbp"})
	require.Equal(t, http.StatusOK, code)
	app.effects.Wait()

	saves := app.repo.snapshot()
	require.Len(t, saves, 5)
	units := make([]domain.Unit, 0, len(saves))
	for _, s := range saves {
		units = append(units, s.Unit)
	}
	assert.Equal(t, []domain.Unit{domain.UnitSat, domain.UnitBit, domain.UnitBTC, domain.UnitSat, domain.UnitSat}, units)
	assert.Equal(t, app.settings.Settings(), saves[len(saves)-1])
	assert.Equal(t, domain.FiatGBP, saves[len(saves)-1].Fiat)
}
