package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forensilink/backend/internal/seed"
	"github.com/forensilink/backend/internal/store/postgres"
	"github.com/forensilink/backend/pkg/leaselock"
	"github.com/forensilink/backend/pkg/logger"
)

func seedCmd() *cobra.Command {
	var dsn string
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a case fixture into the database",
		Long:  "Load a YAML case fixture into the database. Without --file the bundled demo fixture is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := databaseURL(dsn)
			if url == "" {
				return fmt.Errorf("no database configured; pass --database-url or set DATABASE_URL")
			}

			fixture, err := seed.Load(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, err := postgres.New(ctx, url)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer client.Close()

			locks := leaselock.New(client.Pool())
			return locks.WithLease(ctx, "casectl:bulk-write", leaselock.Options{}, func(ctx context.Context) error {
				stats, err := fixture.Apply(ctx, client)
				if err != nil {
					return err
				}
				logger.Info("Fixture loaded",
					"cases", stats.Cases,
					"entities", stats.Entities,
					"connections", stats.Connections,
				)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dsn, "database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
	cmd.Flags().StringVar(&file, "file", "", "Fixture file to load instead of the bundled one")
	return cmd
}
