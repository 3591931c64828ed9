package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>...",
		Aliases: []string{"rm", "logout"},
		Short:   "Delete one or more accounts",
		Long: "Delete one or more accounts and their stored credentials. " +
			"If any id is unknown nothing is removed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Accounts.Remove(args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removed %d account(s).\n", n)
			if u, _, ok := c.app.Accounts.Current(); ok {
				fmt.Fprintf(out, "Current: %s (%s)\n", u.Name, u.UserID)
			}
			return nil
		},
	}
}
