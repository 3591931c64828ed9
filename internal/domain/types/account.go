package types

import "time"

// User is the profile of a signed-in account.
type User struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ID returns the stable account identifier.
func (u User) ID() string { return u.UserID }

// Credential holds the tokens issued for an account.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the access token has expired at now. A zero
// ExpiresAt never expires.
func (c Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
