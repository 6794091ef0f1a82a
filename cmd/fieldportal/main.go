package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/techile/fieldportal/internal/interfaces/cli/migrate"
	"github.com/techile/fieldportal/internal/interfaces/cli/processoverdue"
	"github.com/techile/fieldportal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldportal",
		Short: "Field service and billing portal",
		Long:  `Field service portal for managing clients, intervention tickets, invoicing, maintenance subscriptions and website projects.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		processoverdue.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
