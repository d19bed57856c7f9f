package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurpe/leasing-service/internal/config"
	"github.com/nurpe/leasing-service/internal/db"
	"github.com/nurpe/leasing-service/internal/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.Environment, cfg.LogLevel)

			// db.New migrates on its own when auto-migrate is on.
			cfg.DB.AutoMigrate = false
			database, err := db.New(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := db.Migrate(database); err != nil {
				return err
			}
			log.Info().Msg("database migrations applied")
			return nil
		},
	}
}
