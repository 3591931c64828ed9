// Package keychain stores small secrets outside the account file.
//
// On macOS secrets are generic passwords in the login Keychain with:
//   - Service: the name passed to NewSystemStore (default "roster")
//   - Account: the secret key, usually an account identifier
//   - Label: "<service>: <key>"
//
// Items are kAccessibleWhenUnlockedThisDeviceOnly and never synchronised.
// Other platforms have no system store; MemoryStore serves tests.
package keychain

import "errors"

// DefaultService is the Keychain service attribute used by the CLI.
const DefaultService = "roster"

var (
	// ErrNotFound is returned when a secret does not exist in the store.
	ErrNotFound = errors.New("secret not found")

	// ErrUnavailable is returned by NewSystemStore on platforms without a
	// system keychain.
	ErrUnavailable = errors.New("system keychain not available on this platform")
)

// Store is the interface for secret storage operations.
type Store interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}
