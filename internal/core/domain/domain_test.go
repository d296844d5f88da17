package domain

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		raw     string
		want    Unit
		wantErr bool
	}{
		{"sat", UnitSat, false},
		{"bit", UnitBit, false},
		{"btc", UnitBTC, false},
		{"BTC", 0, true},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseUnit(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidUnit))
				assert.False(t, got.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestParseFiat(t *testing.T) {
	for _, f := range Fiats() {
		got, err := ParseFiat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFiat("jpy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFiat))
	assert.Contains(t, err.Error(), "jpy")
}

func TestUnit_Metadata(t *testing.T) {
	assert.Equal(t, int64(1), UnitSat.Denominator())
	assert.Equal(t, int64(100), UnitBit.Denominator())
	assert.Equal(t, int64(100_000_000), UnitBTC.Denominator())
	assert.Equal(t, "BTC", UnitBTC.Display())
	assert.Equal(t, "Satoshi", UnitSat.DisplayLong())
	assert.False(t, Unit(0).Valid())
	assert.False(t, Unit(42).Valid())
}

func TestFiat_Metadata(t *testing.T) {
	assert.Equal(t, "€", FiatEUR.Symbol())
	assert.Equal(t, "British Pound", FiatGBP.Name())
	assert.False(t, Fiat(0).Valid())
}

func TestSettings_JSON(t *testing.T) {
	s := Settings{Unit: UnitSat, Fiat: FiatEUR, Restoring: true, Autopilot: false}

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit":"sat","fiat":"eur","restoring":true,"autopilot":false}`, string(b))

	var decoded Settings
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, s, decoded)

	err = json.Unmarshal([]byte(`{"unit":"mbtc"}`), &decoded)
	assert.Error(t, err)

	_, err = json.Marshal(Settings{})
	assert.Error(t, err, "zero-value unit must not serialize")
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, UnitBTC, s.Unit)
	assert.Equal(t, FiatUSD, s.Fiat)
	assert.False(t, s.Restoring)
	assert.True(t, s.Autopilot)
}

func TestLocalFiat(t *testing.T) {
	tests := []struct {
		country string
		want    Fiat
		wantErr bool
	}{
		{"de", FiatEUR, false},
		{"DE", FiatEUR, false},
		{" fr ", FiatEUR, false},
		{"gb", FiatGBP, false},
		{"us", FiatUSD, false},
		{"jp", 0, true},
		{"zz", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, err := LocalFiat(tt.country)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFiat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyForCountry(t *testing.T) {
	code, ok := CurrencyForCountry("jp")
	assert.True(t, ok)
	assert.Equal(t, "jpy", code)

	_, ok = CurrencyForCountry("xx")
	assert.False(t, ok)
}

func TestUnit_FromSatoshis(t *testing.T) {
	tests := []struct {
		unit Unit
		sat  int64
		want string
	}{
		{UnitSat, 12345, "12345"},
		{UnitBit, 12345, "123.45"},
		{UnitBit, 12300, "123"},
		{UnitBTC, 100_000_000, "1"},
		{UnitBTC, 150_000, "0.0015"},
		{UnitBTC, 1, "0.00000001"},
		{UnitBTC, -250_000_000, "-2.5"},
		{UnitBTC, math.MinInt64, "-92233720368.54775808"},
		{UnitBit, math.MinInt64, "-92233720368547758.08"},
		{UnitSat, math.MinInt64, "-9223372036854775808"},
		{UnitBTC, math.MaxInt64, "92233720368.54775807"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.unit.FromSatoshis(tt.sat), "unit=%s sat=%d", tt.unit, tt.sat)
	}
}

func TestFiatValue(t *testing.T) {
	assert.Equal(t, 50.0, FiatValue(100_000, 50_000))
	assert.Equal(t, 0.01, FiatValue(20, 50_000))
	assert.Equal(t, 0.0, FiatValue(0, 50_000))
}

func TestStore_Mutators(t *testing.T) {
	s := NewStore(DefaultSettings())

	s.SetUnit(UnitSat)
	s.SetFiat(FiatGBP)
	s.SetRestoring(true)
	s.SetAutopilot(false)

	assert.Equal(t, Settings{Unit: UnitSat, Fiat: FiatGBP, Restoring: true, Autopilot: false}, s.Settings())

	prev := s.FlipAutopilot()
	assert.False(t, prev)
	assert.True(t, s.Settings().Autopilot)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore(DefaultSettings())
	snap := s.Settings()
	snap.Unit = UnitSat

	assert.Equal(t, UnitBTC, s.Settings().Unit)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore(DefaultSettings())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetUnit(UnitSat)
		}()
		go func() {
			defer wg.Done()
			_ = s.Settings()
		}()
	}
	wg.Wait()

	assert.Equal(t, UnitSat, s.Settings().Unit)
}

func TestAutopilotTransition_Confirm(t *testing.T) {
	s := NewStore(Settings{Unit: UnitBTC, Fiat: FiatUSD, Autopilot: true})

	tr := BeginAutopilotToggle(s)
	assert.Equal(t, PhaseProvisional, tr.Phase())
	assert.True(t, tr.Previous())
	assert.False(t, tr.Target())
	assert.False(t, s.Settings().Autopilot, "store holds the optimistic value while provisional")

	require.NoError(t, tr.Confirm())
	assert.Equal(t, PhaseConfirmed, tr.Phase())
	assert.False(t, s.Settings().Autopilot)

	assert.ErrorIs(t, tr.Confirm(), ErrTransitionSettled)
	assert.ErrorIs(t, tr.Revert(), ErrTransitionSettled)
	assert.False(t, s.Settings().Autopilot, "settled transition must not touch the store")
}

func TestAutopilotTransition_Revert(t *testing.T) {
	s := NewStore(Settings{Unit: UnitBTC, Fiat: FiatUSD, Autopilot: false})

	tr := BeginAutopilotToggle(s)
	assert.True(t, s.Settings().Autopilot)

	require.NoError(t, tr.Revert())
	assert.Equal(t, PhaseReverted, tr.Phase())
	assert.False(t, s.Settings().Autopilot)

	assert.ErrorIs(t, tr.Revert(), ErrTransitionSettled)
}

func TestAutopilotTransition_StableUntilBegin(t *testing.T) {
	s := NewStore(Settings{Unit: UnitBTC, Fiat: FiatUSD, Autopilot: true})

	tr := NewAutopilotTransition(s)
	assert.Equal(t, PhaseStable, tr.Phase())
	assert.True(t, s.Settings().Autopilot, "a stable transition leaves the store alone")
	assert.ErrorIs(t, tr.Confirm(), ErrTransitionNotStarted)
	assert.ErrorIs(t, tr.Revert(), ErrTransitionNotStarted)
	assert.Equal(t, PhaseStable, tr.Phase())

	require.NoError(t, tr.Begin())
	assert.Equal(t, PhaseProvisional, tr.Phase())
	assert.False(t, s.Settings().Autopilot)
	assert.ErrorIs(t, tr.Begin(), ErrTransitionStarted)
	assert.False(t, s.Settings().Autopilot, "a second Begin must not flip again")

	require.NoError(t, tr.Revert())
	assert.True(t, s.Settings().Autopilot)
	assert.ErrorIs(t, tr.Begin(), ErrTransitionStarted)
}

func TestTransitionPhase_Constants(t *testing.T) {
	assert.Equal(t, TransitionPhase("STABLE"), PhaseStable)
	assert.Equal(t, TransitionPhase("PROVISIONAL"), PhaseProvisional)
	assert.Equal(t, TransitionPhase("CONFIRMED"), PhaseConfirmed)
	assert.Equal(t, TransitionPhase("REVERTED"), PhaseReverted)
}

func TestAuditAction_Constants(t *testing.T) {
	assert.Equal(t, AuditAction("SET_UNIT"), AuditActionSetUnit)
	assert.Equal(t, AuditAction("SET_FIAT"), AuditActionSetFiat)
	assert.Equal(t, AuditAction("DETECT_FIAT"), AuditActionDetectFiat)
	assert.Equal(t, AuditAction("SET_RESTORING"), AuditActionSetRestoring)
	assert.Equal(t, AuditAction("TOGGLE_AUTOPILOT"), AuditActionToggleAutopilot)
}
