package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"roster/internal/account"
	"roster/internal/audit"
	"roster/internal/credential"
	"roster/internal/keychain"
	accountsvc "roster/internal/services/accounts"
	"roster/internal/services/session"
)

const auditFile = "audit.log"

// ErrCredentialsLocked is returned by New when the account file exists but
// its credentials cannot be opened with the configured credential store.
var ErrCredentialsLocked = errors.New("cannot open stored credentials")

func auditPath(home string) string { return filepath.Join(home, auditFile) }

// NewLogger returns a text logger on w at cfg's level.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// New constructs the dependency graph from cfg.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	creds, err := newCredentialStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg}
	factory := session.Factory{Store: cfg.Store, Logger: logger}
	if cfg.Audit {
		l, err := audit.NewLogger(auditPath(cfg.Home))
		if err != nil {
			return nil, err
		}
		a.audit = l
		factory.Auditor = l
	}
	newContext := factory.New()

	// Opening activates the current account, so the audit log must be ready.
	store, err := account.Open(cfg.Store, newContext,
		account.WithDir(cfg.Home),
		account.WithCredentialStore(creds),
		account.WithCodec(newCodec(cfg)),
		account.WithLogger(logger),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	// Saving now would replace every account that failed to open.
	if err := store.LoadErr(); errors.Is(err, account.ErrCredentialLoad) {
		_ = a.Close()
		return nil, fmt.Errorf("%w: %s (wrong passphrase or missing key?): %w", ErrCredentialsLocked, store.Path(), err)
	}
	a.Store = store
	a.Accounts = accountsvc.New(store, newContext)
	return a, nil
}

func newCredentialStore(cfg Config, logger *slog.Logger) (account.CredentialStore, error) {
	switch cfg.Credentials {
	case CredentialsPassphrase:
		if cfg.Passphrase == "" {
			return nil, fmt.Errorf("passphrase required (-p) for the %s credential store", cfg.Credentials)
		}
		return credential.NewPassphraseStore(cfg.Passphrase, credential.DefaultScryptParams)
	case CredentialsKeychain:
		keys, err := keychain.NewSystemStore(keychain.DefaultService)
		if err != nil {
			return nil, err
		}
		return credential.NewKeychainStore(keys, logger), nil
	default:
		return account.PassthroughCredentialStore{}, nil
	}
}

func newCodec(cfg Config) account.Codec {
	if cfg.Codec == CodecMsgpack {
		return account.MsgpackCodec{}
	}
	return account.JSONCodec{}
}
