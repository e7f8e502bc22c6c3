package main

import (
	"context"
	"fmt"

	"storefront/internal/domain/lifecycle"

	"github.com/spf13/cobra"
)

func newMigrateCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the account schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*lifecycle.DefaultTimeout)
			defer cancel()

			if err := b.Migrate(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")

			return nil
		},
	}
}
