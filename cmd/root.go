package cmd

import (
	"fmt"

	"github.com/misterclayt0n/fuel/internal/config"
	"github.com/misterclayt0n/fuel/internal/logger"
	"github.com/misterclayt0n/fuel/internal/storage"
	"github.com/misterclayt0n/fuel/internal/utils"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "fuel",
	Short:         "CLI calorie and macro tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
			return fmt.Errorf("Failed to initialize logger: %w", err)
		}
		utils.SetLocation(cfg.Location())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func newStorage() (*storage.Storage, error) {
	st, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("Failed to open storage: %w", err)
	}
	return st, nil
}
