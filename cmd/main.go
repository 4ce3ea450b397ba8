package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"resource_api/internal/logger"
	"resource_api/internal/repository/db"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every subcommand needs after config is loaded.
type app struct {
	cfgPath string
	cfg     config
	log     *logger.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "resource-api",
		Short:         "Basic-auth protected CRUD service for resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(viper.New(), a.cfgPath)
			if err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
			a.cfg = cfg
			a.log = logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFmt})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default: configs/config.yml)")

	root.AddCommand(newServeCmd(a), newUserCmd(a), newMigrateCmd(a))
	return root
}

// openDB initializes the SQLite database using configuration and applies migrations.
func (a *app) openDB(ctx context.Context) (*sql.DB, error) {
	if a.cfg.DBPath == "" {
		a.log.Infow("db.path not set in config; using default file", "default", "app.db")
		a.cfg.DBPath = "app.db"
	}
	return db.InitDB(ctx, a.cfg.DBPath, db.Options{MaxOpenConns: a.cfg.MaxOpenConns})
}

func (a *app) closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		a.log.Errorw("failed to close sqlite", "err", err)
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := a.openDB(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to migrate sqlite: %w", err)
			}
			a.closeDB(conn)
			a.log.Infow("migrations applied", "db", a.cfg.DBPath)
			return nil
		},
	}
}
