// Command shop runs the shop API and manages its database.
//
//	shop serve             # start the HTTP (and optional gRPC) server
//	shop route:list        # list API routes
//	shop migrate           # run pending migrations
//	shop migrate:rollback  # roll back the last batch
//	shop migrate:status
//	shop seed              # load the sample data
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Migrations register themselves from init.
	_ "github.com/josys/shop/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "shop",
	Short:         "Inventory and procurement API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
