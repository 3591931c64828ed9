package credential

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/chacha20poly1305"

	"roster/internal/account"
	"roster/internal/keychain"
)

// KeychainStore seals credentials with a per-account key held in a
// keychain.Store. The sealed form is nonce || ciphertext.
type KeychainStore struct {
	keys   keychain.Store
	logger *slog.Logger
}

// NewKeychainStore returns a store keeping its keys in keys.
func NewKeychainStore(keys keychain.Store, logger *slog.Logger) *KeychainStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &KeychainStore{keys: keys, logger: logger}
}

// StoreCredentialData seals data with identifier's key, creating the key on
// first use.
func (s *KeychainStore) StoreCredentialData(data []byte, identifier string) ([]byte, error) {
	key, err := s.dataKey(identifier)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, aead.NonceSize(), aead.NonceSize()+len(data)+aead.Overhead())
	if _, err := rand.Read(out); err != nil {
		return nil, err
	}
	return aead.Seal(out, out, data, []byte(identifier)), nil
}

// LoadCredentialData opens info with identifier's key.
func (s *KeychainStore) LoadCredentialData(identifier string, info []byte) ([]byte, error) {
	key, err := s.keys.Get(identifier)
	if err != nil {
		return nil, fmt.Errorf("loading key for %q: %w", identifier, err)
	}
	defer wipe(key)
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: key for %q has %d bytes", ErrMalformed, identifier, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(info) < aead.NonceSize()+aead.Overhead() {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformed, len(info))
	}
	nonce, ct := info[:aead.NonceSize()], info[aead.NonceSize():]
	pt, err := aead.Open(nil, nonce, ct, []byte(identifier))
	if err != nil {
		return nil, fmt.Errorf("opening credential for %q: %w", identifier, err)
	}
	return pt, nil
}

// DeleteCredentialData removes identifier's key. Failures are logged.
func (s *KeychainStore) DeleteCredentialData(identifier string) {
	if err := s.keys.Delete(identifier); err != nil {
		s.logger.Warn("deleting credential key failed", "account", identifier, "error", err)
	}
}

func (s *KeychainStore) dataKey(identifier string) ([]byte, error) {
	key, err := s.keys.Get(identifier)
	if err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	if err != nil && !errors.Is(err, keychain.ErrNotFound) {
		return nil, fmt.Errorf("loading key for %q: %w", identifier, err)
	}

	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := s.keys.Set(identifier, key); err != nil {
		wipe(key)
		return nil, fmt.Errorf("saving key for %q: %w", identifier, err)
	}
	return key, nil
}

// Compile-time assertion that KeychainStore implements account.CredentialStore.
var _ account.CredentialStore = (*KeychainStore)(nil)
