package credential

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"roster/internal/account"
)

// The current version of the sealed blob written by PassphraseStore.
const envelopeVersion = 1

const saltSize = 16

// Upper bounds for scrypt costs read back from disk, so a tampered file
// cannot make a load allocate without limit.
const (
	maxScryptN  = 1 << 20
	maxScryptRP = 1 << 10
)

// ScryptParams are the scrypt cost parameters.
type ScryptParams struct {
	N int
	R int
	P int
}

// DefaultScryptParams are the parameters used for new blobs.
var DefaultScryptParams = ScryptParams{N: 1 << 15, R: 8, P: 1}

// envelope is the JSON structure stored in the credential field.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// PassphraseStore seals credentials with a passphrase-derived key.
type PassphraseStore struct {
	passphrase []byte
	params     ScryptParams
}

// NewPassphraseStore returns a store for passphrase. params applies to new
// blobs only; loads use the parameters recorded in each blob.
func NewPassphraseStore(passphrase string, params ScryptParams) (*PassphraseStore, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &PassphraseStore{passphrase: []byte(passphrase), params: params}, nil
}

// StoreCredentialData seals data for identifier under a fresh salt.
func (s *PassphraseStore) StoreCredentialData(data []byte, identifier string) ([]byte, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key(s.passphrase, salt[:], s.params.N, s.params.R, s.params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	// zero nonce; the salt makes every key single-use
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], data, additionalData(salt[:], identifier))

	return json.Marshal(envelope{
		V:      envelopeVersion,
		Salt:   salt[:],
		N:      s.params.N,
		R:      s.params.R,
		P:      s.params.P,
		Cipher: ct,
	})
}

// LoadCredentialData opens a blob produced by StoreCredentialData.
func (s *PassphraseStore) LoadCredentialData(identifier string, info []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(info, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported credential envelope version %d", env.V)
	}
	if len(env.Salt) != saltSize || env.N <= 1 || env.N > maxScryptN ||
		env.R < 1 || env.P < 1 || env.R > maxScryptRP || env.P > maxScryptRP ||
		env.R*env.P > maxScryptRP {
		return nil, fmt.Errorf("%w: bad key derivation parameters", ErrMalformed)
	}

	key, err := scrypt.Key(s.passphrase, env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, additionalData(env.Salt, identifier))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// DeleteCredentialData is a no-op; nothing is kept outside the blob.
func (s *PassphraseStore) DeleteCredentialData(string) {}

func additionalData(salt []byte, identifier string) []byte {
	ad := make([]byte, 0, len(salt)+len(identifier))
	ad = append(ad, salt...)
	return append(ad, identifier...)
}

// Compile-time assertion that PassphraseStore implements account.CredentialStore.
var _ account.CredentialStore = (*PassphraseStore)(nil)
