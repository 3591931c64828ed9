package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"roster/internal/domain"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all accounts, current last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users := c.app.Accounts.List()
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "\tID\tNAME\tEMAIL")
			for i, u := range users {
				marker := ""
				if i == len(users)-1 {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, u.UserID, u.Name, u.Email)
			}
			return w.Flush()
		},
	}
}

func (c *cli) currentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, cred, ok := c.app.Accounts.Current()
			if !ok {
				return errNoAccount
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:      %s\n", u.UserID)
			fmt.Fprintf(out, "Name:    %s\n", u.Name)
			if u.Email != "" {
				fmt.Fprintf(out, "Email:   %s\n", u.Email)
			}
			fmt.Fprintf(out, "Token:   %s\n", domain.MaskToken(cred.AccessToken))
			if !cred.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Expires: %s\n", cred.ExpiresAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}
