package credential

import "errors"

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted credential")

	// ErrEmptyPassphrase is returned by NewPassphraseStore for "".
	ErrEmptyPassphrase = errors.New("passphrase required")

	// ErrMalformed is returned for sealed data that cannot be parsed.
	ErrMalformed = errors.New("malformed sealed credential")
)
