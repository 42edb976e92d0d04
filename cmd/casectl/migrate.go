package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/forensilink/backend/pkg/logger"
)

func migrateCmd() *cobra.Command {
	var dsn string
	var dir string
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := databaseURL(dsn)
			if url == "" {
				return fmt.Errorf("no database configured; pass --database-url or set DATABASE_URL")
			}

			m, err := migrate.New("file://"+dir, url)
			if err != nil {
				return fmt.Errorf("opening migrations: %w", err)
			}
			defer m.Close()

			if down {
				err = m.Down()
			} else {
				err = m.Up()
			}
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("Database already up to date")
				return nil
			}
			if err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			logger.Info("Migrations applied")
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
	cmd.Flags().StringVar(&dir, "dir", "migrations", "Directory containing migration files")
	cmd.Flags().BoolVar(&down, "down", false, "Roll all migrations back instead of applying them")
	return cmd
}
