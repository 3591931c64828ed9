package commands

import (
	"time"

	"github.com/spf13/cobra"

	"roster/internal/domain"
)

// credentialFlags collects the token flags shared by add, login and refresh.
type credentialFlags struct {
	token     string
	refresh   string
	expiresIn time.Duration
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "access token")
	cmd.Flags().StringVar(&f.refresh, "refresh-token", "", "refresh token")
	cmd.Flags().DurationVar(&f.expiresIn, "expires-in", 0, "access token lifetime, e.g. 1h (0 = no expiry)")
}

func (f *credentialFlags) credential() domain.Credential {
	cred := domain.Credential{AccessToken: f.token, RefreshToken: f.refresh}
	if f.expiresIn > 0 {
		cred.ExpiresAt = time.Now().Add(f.expiresIn).UTC()
	}
	return cred
}
