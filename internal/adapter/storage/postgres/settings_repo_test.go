package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-settings/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := NewSettingsRepo(mock)
	repo.now = func() time.Time { return at }

	s := domain.Settings{Unit: domain.UnitSat, Fiat: domain.FiatEUR, Restoring: false, Autopilot: true}

	mock.ExpectExec("INSERT INTO wallet_settings").
		WithArgs("sat", "eur", false, true, at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Save(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Save_Upserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectExec("ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs("btc", "usd", false, true, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs("btc", "usd", false, true, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Save(context.Background(), domain.DefaultSettings()))
	require.NoError(t, repo.Save(context.Background(), domain.DefaultSettings()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Save_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectExec("INSERT INTO wallet_settings").
		WithArgs("bit", "gbp", true, false, pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err = repo.Save(context.Background(), domain.Settings{
		Unit: domain.UnitBit, Fiat: domain.FiatGBP, Restoring: true, Autopilot: false,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save settings")
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
