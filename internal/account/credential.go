package account

// CredentialStore transforms serialised credential bytes before they are
// written to the account file and reverses the transform on load.
type CredentialStore interface {
	// StoreCredentialData returns the bytes to persist in place of data.
	StoreCredentialData(data []byte, identifier string) ([]byte, error)
	// LoadCredentialData returns the serialised credential for info, the
	// bytes previously produced by StoreCredentialData.
	LoadCredentialData(identifier string, info []byte) ([]byte, error)
	// DeleteCredentialData drops any material kept outside the account
	// file for identifier. Failures are not reported.
	DeleteCredentialData(identifier string)
}

// PassthroughCredentialStore persists credential bytes unchanged.
type PassthroughCredentialStore struct{}

func (PassthroughCredentialStore) StoreCredentialData(data []byte, _ string) ([]byte, error) {
	return data, nil
}

func (PassthroughCredentialStore) LoadCredentialData(_ string, info []byte) ([]byte, error) {
	return info, nil
}

func (PassthroughCredentialStore) DeleteCredentialData(string) {}

// Compile-time assertion that PassthroughCredentialStore implements CredentialStore.
var _ CredentialStore = PassthroughCredentialStore{}
