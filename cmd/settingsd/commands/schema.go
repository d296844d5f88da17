package commands

import (
	pgStorage "wallet-settings/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the settings and audit tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
				return err
			}
			log.Info().Str("database", cfg.Database.DBName).Msg("schema ready")
			return nil
		},
	}
}
