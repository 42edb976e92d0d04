package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forensilink/backend/internal/datagen"
	"github.com/forensilink/backend/internal/store/postgres"
	"github.com/forensilink/backend/pkg/leaselock"
	"github.com/forensilink/backend/pkg/logger"
)

func datagenCmd() *cobra.Command {
	var dsn string
	cfg := datagen.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Fill the database with synthetic cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := databaseURL(dsn)
			if url == "" {
				return fmt.Errorf("no database configured; pass --database-url or set DATABASE_URL")
			}

			ctx := cmd.Context()
			client, err := postgres.New(ctx, url)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer client.Close()

			locks := leaselock.New(client.Pool())
			return locks.WithLease(ctx, "casectl:bulk-write", leaselock.Options{}, func(ctx context.Context) error {
				cases, entities, connections, err := datagen.Generate(ctx, client, cfg)
				if err != nil {
					return err
				}
				logger.Info("Synthetic data generated",
					"cases", cases,
					"entities", entities,
					"connections", connections,
				)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dsn, "database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
	cmd.Flags().IntVar(&cfg.Cases, "cases", cfg.Cases, "Number of cases to generate")
	cmd.Flags().IntVar(&cfg.MaxEntities, "max-entities", cfg.MaxEntities, "Maximum entities per case")
	cmd.Flags().IntVar(&cfg.MaxConnections, "max-connections", cfg.MaxConnections, "Maximum connections per case")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	return cmd
}
