package account

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainUser struct {
	UserID string `json:"id"`
}

func (u plainUser) ID() string { return u.UserID }

type nopContext struct{}

func (nopContext) Activate(ActivationReason)  {}
func (nopContext) Deactivate()                {}
func (nopContext) HandleUserUpdate(plainUser) {}
func (nopContext) HandleDeletion()            {}

func nopFactory(plainUser, string) Context[plainUser] { return nopContext{} }

func TestEncodeDecodeRequireCredentialStore(t *testing.T) {
	a := NewAccount(plainUser{UserID: "a"}, "secret", nopFactory)

	_, err := encodeAccount(a, JSONCodec{}, nil)
	require.ErrorIs(t, err, ErrNoCredentialStore)

	_, err = decodeAccount[plainUser, string](record[plainUser]{Identifier: "a", User: plainUser{UserID: "a"}}, JSONCodec{}, nil, nopFactory)
	require.ErrorIs(t, err, ErrNoCredentialStore)
}

func TestEncodeDecodeAccount(t *testing.T) {
	a := NewAccount(plainUser{UserID: "a"}, "secret", nopFactory)

	rec, err := encodeAccount(a, JSONCodec{}, PassthroughCredentialStore{})
	require.NoError(t, err)
	assert.Equal(t, "a", rec.Identifier)
	assert.Equal(t, []byte(`"secret"`), rec.Credential)

	got, err := decodeAccount[plainUser, string](rec, JSONCodec{}, PassthroughCredentialStore{}, nopFactory)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Identifier())
	assert.Equal(t, "secret", got.Credential())
}

func TestDecodeAccount_BadCredentialBytes(t *testing.T) {
	rec := record[plainUser]{Identifier: "a", User: plainUser{UserID: "a"}, Credential: []byte("{")}

	_, err := decodeAccount[plainUser, string](rec, JSONCodec{}, PassthroughCredentialStore{}, nopFactory)
	assert.Error(t, err)
}

func TestReplaceAccountFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.accounts")

	_, ok, err := readAccountFile(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, replaceAccountFile(path, []byte("new")))

	data, ok, err := readAccountFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), data)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fileMode, info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReplaceAccountFile_MissingDir(t *testing.T) {
	err := replaceAccountFile(filepath.Join(t.TempDir(), "gone", "x.accounts"), []byte("x"))
	assert.Error(t, err)
}
