//go:build !darwin

package keychain

// NewSystemStore reports ErrUnavailable outside macOS.
func NewSystemStore(string) (Store, error) {
	return nil, ErrUnavailable
}
