package interfaces

import domaintypes "roster/internal/domain/types"

// AccountService manages the signed-in accounts of one store. Ids accept a
// unique prefix of the full identifier.
type AccountService interface {
	// Add registers a new account under a generated id and makes it current.
	Add(name, email string, cred domaintypes.Credential) (domaintypes.User, error)
	// Login adds an account issued elsewhere and makes it current.
	Login(user domaintypes.User, cred domaintypes.Credential) error
	// Switch makes an existing account current.
	Switch(id string) (domaintypes.User, error)
	// Rename changes the display name of an account.
	Rename(id, name string) (domaintypes.User, error)
	// Refresh replaces the credential of an account and makes it current.
	Refresh(id string, cred domaintypes.Credential) error
	// Remove deletes the given accounts in one write and returns how many
	// were removed.
	Remove(ids ...string) (int, error)

	// List returns the users in store order, current last.
	List() []domaintypes.User
	// Current returns the current user and credential.
	Current() (domaintypes.User, domaintypes.Credential, bool)
}
