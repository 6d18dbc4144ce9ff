package main

import (
	"fmt"

	"wordbank/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbCfg, err := config.LoadDatabase()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := connectDatabase(dbCfg.DSN(), 5, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := runMigrations(db, logger); err != nil {
			return err
		}

		logger.Info("Database is up to date", zap.String("database", dbCfg.Name))
		return nil
	},
}
