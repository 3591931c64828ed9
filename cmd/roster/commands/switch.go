package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) switchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Make another account current",
		Long:  "Make another account current. <id> may be any unique prefix of the account id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.app.Accounts.Switch(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s (%s).\n", u.Name, u.UserID)
			return nil
		},
	}
}

func (c *cli) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Change an account's display name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.app.Accounts.Rename(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s.\n", u.UserID, u.Name)
			return nil
		},
	}
}

func (c *cli) refreshCmd() *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "refresh [id]",
		Short: "Replace an account's tokens and make it current",
		Long:  "Replace an account's tokens and make it current. Without [id] the current account is refreshed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				u, _, ok := c.app.Accounts.Current()
				if !ok {
					return errNoAccount
				}
				id = u.UserID
			}
			if err := c.app.Accounts.Refresh(id, creds.credential()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tokens updated.")
			return nil
		},
	}
	creds.register(cmd)
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
