package main

import (
	"fmt"

	"review-api/internal/config"
	"review-api/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "review-api",
	Short: "Employee performance review API",
	Long: `review-api serves the performance review HTTP API.
Without a subcommand it runs the server, same as "review-api serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (environment variables take precedence)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// openStore loads the config, connects and brings the schema up to date.
func openStore() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}
