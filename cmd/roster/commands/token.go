package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var errNoAccount = errors.New("no account signed in. use `roster add` or `roster login`")

func (c *cli) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the current account's access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, cred, ok := c.app.Accounts.Current()
			if !ok {
				return errNoAccount
			}
			if cred.Expired(time.Now()) {
				return fmt.Errorf("access token for %s expired at %s. use `roster refresh`",
					u.Name, cred.ExpiresAt.Local().Format(time.RFC3339))
			}
			fmt.Fprintln(cmd.OutOrStdout(), cred.AccessToken)
			return nil
		},
	}
}
