package credential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/account"
	"roster/internal/credential"
	"roster/internal/keychain"
)

type user struct {
	UserID string `json:"id"`
}

func (u user) ID() string { return u.UserID }

type token struct {
	Value string `json:"value"`
}

type quietContext struct{}

func (quietContext) Activate(account.ActivationReason) {}
func (quietContext) Deactivate()                       {}
func (quietContext) HandleUserUpdate(user)             {}
func (quietContext) HandleDeletion()                   {}

func newContext(user, token) account.Context[user] { return quietContext{} }

func openStore(t *testing.T, dir string, cs account.CredentialStore) *account.Store[user, token] {
	t.Helper()
	s, err := account.Open[user, token]("sealed", newContext,
		account.WithDir(dir), account.WithCredentialStore(cs))
	require.NoError(t, err)
	return s
}

func TestAccountStore_PassphraseReload(t *testing.T) {
	dir := t.TempDir()
	s := openStore(t, dir, newPassphraseStore(t, "pass"))
	require.NoError(t, s.Register(account.NewAccount(user{"alice"}, token{"t-1"}, newContext)))

	reopened := openStore(t, dir, newPassphraseStore(t, "pass"))
	cur, ok := reopened.Current()
	require.True(t, ok)
	assert.Equal(t, token{"t-1"}, cur.Credential())

	wrong := openStore(t, dir, newPassphraseStore(t, "nope"))
	assert.Empty(t, wrong.Accounts())
	assert.ErrorIs(t, wrong.LoadErr(), credential.ErrWrongPassphrase)
}

func TestAccountStore_KeychainRemoveDeletesKey(t *testing.T) {
	dir := t.TempDir()
	keys := keychain.NewMemoryStore()
	cs := credential.NewKeychainStore(keys, nil)
	s := openStore(t, dir, cs)
	require.NoError(t, s.Register(account.NewAccount(user{"alice"}, token{"a"}, newContext)))
	require.NoError(t, s.Register(account.NewAccount(user{"bob"}, token{"b"}, newContext)))
	require.Equal(t, 2, keys.Len())

	reopened := openStore(t, dir, cs)
	alice, ok := reopened.Account("alice")
	require.True(t, ok)
	assert.Equal(t, token{"a"}, alice.Credential())

	require.NoError(t, reopened.RemoveAccount("alice"))
	assert.Equal(t, 1, keys.Len())
	_, err := keys.Get("alice")
	assert.ErrorIs(t, err, keychain.ErrNotFound)
}
