package account

import "errors"

var (
	// ErrDuplicateAccount is returned by Register and Login when an account
	// with the same identifier is already in the store.
	ErrDuplicateAccount = errors.New("account already registered")

	// ErrAccountNotFound is returned when an operation names an identifier
	// that is not in the store.
	ErrAccountNotFound = errors.New("account not found")

	// ErrIdentifierMismatch is returned when a user update carries a
	// different id than the account it is applied to.
	ErrIdentifierMismatch = errors.New("user id does not match account identifier")

	// ErrNoCredentialStore is returned when an account is encoded or decoded
	// without a credential store.
	ErrNoCredentialStore = errors.New("no credential store")

	// ErrCredentialLoad wraps failures of the CredentialStore to open a
	// stored credential, such as a wrong passphrase or a missing key.
	ErrCredentialLoad = errors.New("opening stored credential")

	// ErrSave wraps failures to persist the account list. The in-memory
	// mutation that triggered the save is kept.
	ErrSave = errors.New("saving accounts")
)
