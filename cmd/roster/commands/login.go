package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"roster/internal/domain"
)

func (c *cli) loginCmd() *cobra.Command {
	var (
		name  string
		email string
		creds credentialFlags
	)
	cmd := &cobra.Command{
		Use:   "login <id>",
		Short: "Add an account issued elsewhere and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := domain.User{UserID: args[0], Name: name, Email: email}
			if err := c.app.Accounts.Login(user, creds.credential()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s, now current.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (default: the id)")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	creds.register(cmd)
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
