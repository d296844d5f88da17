package postgres

import (
	"context"
	"fmt"
)

// schemaStatements create the settings and audit tables. Each statement is
// idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS wallet_settings (
		id         SMALLINT PRIMARY KEY CHECK (id = 1),
		unit       TEXT NOT NULL CHECK (unit IN ('sat', 'bit', 'btc')),
		fiat       TEXT NOT NULL CHECK (fiat IN ('usd', 'eur', 'gbp')),
		restoring  BOOLEAN NOT NULL DEFAULT FALSE,
		autopilot  BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS settings_audit_logs (
		id         UUID PRIMARY KEY,
		action     TEXT NOT NULL,
		setting    TEXT NOT NULL,
		details    JSONB,
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_settings_audit_logs_created_at ON settings_audit_logs (created_at DESC)`,
}

// EnsureSchema creates the tables in a single transaction.
func EnsureSchema(ctx context.Context, pool Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}
