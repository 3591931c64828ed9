package credential_test

import (
	"bytes"
	"errors"
	"testing"

	"roster/internal/credential"
	"roster/internal/keychain"
)

var fastScrypt = credential.ScryptParams{N: 16, R: 1, P: 1}

func newPassphraseStore(t *testing.T, pass string) *credential.PassphraseStore {
	t.Helper()
	s, err := credential.NewPassphraseStore(pass, fastScrypt)
	if err != nil {
		t.Fatalf("new passphrase store: %v", err)
	}
	return s
}

func TestPassphrase_StoreLoad_OK(t *testing.T) {
	s := newPassphraseStore(t, "correct horse")
	raw := []byte(`{"access_token":"abc"}`)

	sealed, err := s.StoreCredentialData(raw, "alice")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if bytes.Contains(sealed, []byte("abc")) {
		t.Fatal("sealed form contains plaintext")
	}

	got, err := s.LoadCredentialData("alice", sealed)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("mismatch after load: %q", got)
	}
}

func TestPassphrase_FreshSaltPerWrite(t *testing.T) {
	s := newPassphraseStore(t, "pass")

	a, _ := s.StoreCredentialData([]byte("x"), "alice")
	b, _ := s.StoreCredentialData([]byte("x"), "alice")
	if bytes.Equal(a, b) {
		t.Fatal("expected different blobs for repeated writes")
	}
}

func TestPassphrase_WrongPassphrase_Fails(t *testing.T) {
	sealed, err := newPassphraseStore(t, "correct").StoreCredentialData([]byte("x"), "alice")
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	_, err = newPassphraseStore(t, "wrong").LoadCredentialData("alice", sealed)
	if !errors.Is(err, credential.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestPassphrase_BoundToIdentifier(t *testing.T) {
	s := newPassphraseStore(t, "pass")
	sealed, _ := s.StoreCredentialData([]byte("x"), "alice")

	if _, err := s.LoadCredentialData("bob", sealed); !errors.Is(err, credential.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase for other account, got %v", err)
	}
}

func TestPassphrase_Malformed(t *testing.T) {
	s := newPassphraseStore(t, "pass")

	for name, info := range map[string][]byte{
		"not json":   []byte("garbage"),
		"short salt": []byte(`{"v":1,"salt":"AAAA","scrypt_N":16,"scrypt_r":1,"scrypt_p":1}`),
		"huge N":     []byte(`{"v":1,"salt":"AAAAAAAAAAAAAAAAAAAAAA==","scrypt_N":1073741824,"scrypt_r":1,"scrypt_p":1}`),
		"zero p":     []byte(`{"v":1,"salt":"AAAAAAAAAAAAAAAAAAAAAA==","scrypt_N":16,"scrypt_r":1,"scrypt_p":0}`),
	} {
		if _, err := s.LoadCredentialData("alice", info); !errors.Is(err, credential.ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestPassphrase_Empty(t *testing.T) {
	if _, err := credential.NewPassphraseStore("", fastScrypt); !errors.Is(err, credential.ErrEmptyPassphrase) {
		t.Fatalf("expected ErrEmptyPassphrase, got %v", err)
	}
}

func TestKeychain_StoreLoadDelete(t *testing.T) {
	keys := keychain.NewMemoryStore()
	s := credential.NewKeychainStore(keys, nil)
	raw := []byte("token")

	sealed, err := s.StoreCredentialData(raw, "alice")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if keys.Len() != 1 {
		t.Fatalf("expected one key, got %d", keys.Len())
	}

	// A second write reuses the key.
	again, err := s.StoreCredentialData(raw, "alice")
	if err != nil {
		t.Fatalf("store again: %v", err)
	}
	if keys.Len() != 1 {
		t.Fatalf("expected key reuse, got %d keys", keys.Len())
	}
	for _, b := range [][]byte{sealed, again} {
		got, err := s.LoadCredentialData("alice", b)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !bytes.Equal(got, raw) {
			t.Fatalf("mismatch after load: %q", got)
		}
	}

	s.DeleteCredentialData("alice")
	if keys.Len() != 0 {
		t.Fatalf("expected key removed, got %d", keys.Len())
	}
	if _, err := s.LoadCredentialData("alice", sealed); !errors.Is(err, keychain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestKeychain_BoundToIdentifier(t *testing.T) {
	keys := keychain.NewMemoryStore()
	s := credential.NewKeychainStore(keys, nil)

	sealed, _ := s.StoreCredentialData([]byte("token"), "alice")
	if _, err := s.StoreCredentialData([]byte("other"), "bob"); err != nil {
		t.Fatalf("store bob: %v", err)
	}
	if _, err := s.LoadCredentialData("bob", sealed); err == nil {
		t.Fatal("expected error opening alice's blob as bob")
	}
}

func TestKeychain_Truncated(t *testing.T) {
	s := credential.NewKeychainStore(keychain.NewMemoryStore(), nil)
	if _, err := s.StoreCredentialData([]byte("token"), "alice"); err != nil {
		t.Fatalf("store: %v", err)
	}
	if _, err := s.LoadCredentialData("alice", []byte("short")); !errors.Is(err, credential.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
