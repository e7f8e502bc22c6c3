package main

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/spf13/cobra"
)

// backend opens the stores the commands act on.
type backend interface {
	// Migrate applies the embedded schema migrations.
	Migrate(ctx context.Context) error
	// OpenAccounts returns the configured account store and a func that releases it.
	OpenAccounts(ctx context.Context) (repository.AccountRepository, func(context.Context) error, error)
}

func newRootCmd(b backend) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "accountctl",
		Short: "Storefront account administration",
		Long: `accountctl manages the storefront account store. It reads the same config.yaml
and environment variables as the API server.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCmd(b))
	rootCmd.AddCommand(newSetRoleCmd(b))

	return rootCmd
}
