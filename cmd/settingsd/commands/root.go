package commands

import (
	"fmt"

	"wallet-settings/config"
	"wallet-settings/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	envFiles []string

	cfg *config.Config
	log zerolog.Logger
)

// Execute runs the settingsd command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "settingsd",
		Short:        "Lightning wallet settings service",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFiles...); err != nil {
				return err
			}
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
			log = logger.New(cfg.Log.Level, cfg.Log.Pretty)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default ./config.yaml or ./config/config.yaml)")
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before reading config (default .env)")

	root.AddCommand(serveCmd(), schemaCmd(), localeCmd())
	return root
}
