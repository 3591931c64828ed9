//go:build darwin

package keychain

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore keeps secrets in the macOS Keychain.
type SystemStore struct {
	service string
}

// NewSystemStore returns a Keychain-backed store for service.
func NewSystemStore(service string) (Store, error) {
	if service == "" {
		service = DefaultService
	}
	return &SystemStore{service: service}, nil
}

// Set stores a secret, replacing any existing item for key.
func (s *SystemStore) Set(key string, value []byte) error {
	// update = delete + add
	_ = s.Delete(key)

	item := gokeychain.NewGenericPassword(s.service, key, fmt.Sprintf("%s: %s", s.service, key), value, "")
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		return fmt.Errorf("keychain add %q: %w", key, err)
	}
	return nil
}

// Get retrieves a secret.
func (s *SystemStore) Get(key string) ([]byte, error) {
	data, err := gokeychain.GetGenericPassword(s.service, key, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("keychain get %q: %w", key, err)
	}
	// GetGenericPassword reports a missing item as nil data and no error.
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, nil
}

// Delete removes a secret. Deleting a missing key is not an error.
func (s *SystemStore) Delete(key string) error {
	err := gokeychain.DeleteGenericPasswordItem(s.service, key)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		return fmt.Errorf("keychain delete %q: %w", key, err)
	}
	return nil
}
