// casectl is the operational companion to the API server: schema
// migrations, fixture seeding and synthetic data generation.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/forensilink/backend/internal/util"
	"github.com/forensilink/backend/pkg/logger"
	"github.com/forensilink/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()
	logger.Init(console.New(console.Params{Debug: util.GetEnvBool("DEBUG", false)}))

	root := &cobra.Command{
		Use:   "casectl",
		Short: "Manage a Forensi-Link case database",
	}
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(datagenCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// databaseURL resolves the connection string from the flag, falling
// back to the DATABASE_URL environment variable.
func databaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return util.GetEnv("DATABASE_URL")
}
