package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) addCmd() *cobra.Command {
	var (
		email string
		creds credentialFlags
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new account and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.app.Accounts.Add(args[0], email, creds.credential())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s), now current.\n", u.Name, u.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	creds.register(cmd)
	return cmd
}
