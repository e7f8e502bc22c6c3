package main

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSetRoleCmd(b backend) *cobra.Command {
	var (
		email string
		role  string
	)

	cmd := &cobra.Command{
		Use:   "set-role",
		Short: "Change the role of an existing account",
		Long: `set-role is the only way to grant the admin or creator role.
Registration always creates standard accounts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, ok := entity.ParseRole(strings.ToLower(strings.TrimSpace(role)))
			if !ok {
				return errors.Errorf("unknown role %q (want one of %s)", role,
					strings.Join(entity.AllRoles().ToStrings(), ", "))
			}

			normalized := entity.NormalizeEmail(email)
			if normalized == "" {
				return errors.New("--email must not be empty")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
			defer cancel()

			accounts, release, err := b.OpenAccounts(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = release(context.Background()) }()

			account, err := accounts.UpdateRole(ctx, normalized, parsed)
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Errorf("no account with email %s", normalized)
			}
			if err != nil {
				return errors.Wrap(err, "update role")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", account.Email, account.Role)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the account to change")
	cmd.Flags().StringVar(&role, "role", "", "New role: "+strings.Join(entity.AllRoles().ToStrings(), ", "))
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
