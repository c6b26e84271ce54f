package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrsvr/hr-backend-go/internal/config"
	"github.com/hrsvr/hr-backend-go/internal/pkg/database"
	"github.com/hrsvr/hr-backend-go/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the employees, attendance and applications tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), postgresql.Migrate)
		},
	}
}

func newResetDBCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-db",
		Short: "Drop and recreate all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset-db drops all data, pass --yes to confirm")
			}
			return withDatabase(cmd.Context(), postgresql.Reset)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm dropping all data")

	return cmd
}

func withDatabase(ctx context.Context, fn func(context.Context, *database.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := fn(ctx, db); err != nil {
		return err
	}
	logger.Info("database ready", "database", cfg.Database.Name)
	return nil
}
