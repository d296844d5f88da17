package postgres

import (
	"context"
	"fmt"
	"time"

	"wallet-settings/internal/core/domain"
)

// SettingsRepo implements ports.SettingsRepository on a single-row table.
type SettingsRepo struct {
	pool Pool
	now  func() time.Time
}

func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool, now: time.Now}
}

// Save upserts the full settings snapshot. The last write wins.
func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	query := `INSERT INTO wallet_settings (id, unit, fiat, restoring, autopilot, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			unit = EXCLUDED.unit,
			fiat = EXCLUDED.fiat,
			restoring = EXCLUDED.restoring,
			autopilot = EXCLUDED.autopilot,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		s.Unit.String(), s.Fiat.String(), s.Restoring, s.Autopilot, r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
