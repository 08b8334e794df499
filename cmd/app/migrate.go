package main

import (
	"github.com/Domenick1991/flightasset/internal/logger"
	"github.com/Domenick1991/flightasset/internal/repository"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	applied, err := repository.Migrate(cfg.Database.URL())
	if err != nil {
		return err
	}
	if applied {
		log.Info().Msg("migrations applied")
	} else {
		log.Info().Msg("schema already up to date")
	}
	return nil
}
