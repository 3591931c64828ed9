package account

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Store owns the ordered account list of one store name and its file.
//
// The current account is the last element of the list. Making an account
// current moves it to the tail.
type Store[U User, C any] struct {
	path        string
	codec       Codec
	credentials CredentialStore
	newContext  ContextFactory[U, C]
	logger      *slog.Logger

	accounts []*Account[U, C]
	loadErr  error
}

// Open loads the store called name and activates its current account with
// ReasonNormal.
//
// A missing file yields an empty store. A file that cannot be decoded is
// logged and also yields an empty store; the error is not returned but is
// kept for LoadErr. Open only fails when the store directory cannot be
// resolved or created.
func Open[U User, C any](name string, newContext ContextFactory[U, C], opts ...Option) (*Store[U, C], error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid store name %q", name)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dir := o.dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving store directory: %w", err)
		}
		dir = filepath.Join(base, defaultDirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	s := &Store[U, C]{
		path:        filepath.Join(dir, name+fileExt),
		codec:       o.codec,
		credentials: o.credentials,
		newContext:  newContext,
		logger:      o.logger.With("store", name),
	}
	s.accounts, s.loadErr = s.load()
	s.excludeFromBackup()

	if cur, ok := s.Current(); ok {
		cur.context.Activate(ReasonNormal)
	}
	return s, nil
}

// LoadErr reports why Open started with an empty list although the account
// file existed. It is nil when the file was missing or loaded cleanly.
// Credential failures wrap ErrCredentialLoad.
func (s *Store[U, C]) LoadErr() error { return s.loadErr }

// Path returns the location of the account file.
func (s *Store[U, C]) Path() string { return s.path }

// Accounts returns the accounts in order, current last. The slice is a
// copy; the accounts are shared with the store.
func (s *Store[U, C]) Accounts() []*Account[U, C] { return slices.Clone(s.accounts) }

// Current returns the current account, the tail of the list.
func (s *Store[U, C]) Current() (*Account[U, C], bool) {
	if len(s.accounts) == 0 {
		return nil, false
	}
	return s.accounts[len(s.accounts)-1], true
}

// Account returns the account with the given identifier.
func (s *Store[U, C]) Account(identifier string) (*Account[U, C], bool) {
	i := s.index(identifier)
	if i < 0 {
		return nil, false
	}
	return s.accounts[i], true
}

// Register adds a newly created account and makes it current.
func (s *Store[U, C]) Register(a *Account[U, C]) error {
	return s.add(a, ReasonRegister)
}

// Login adds an existing external account and makes it current.
func (s *Store[U, C]) Login(a *Account[U, C]) error {
	return s.add(a, ReasonLogin)
}

func (s *Store[U, C]) add(a *Account[U, C], reason ActivationReason) error {
	if s.index(a.identifier) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, a.identifier)
	}
	if cur, ok := s.Current(); ok {
		cur.context.Deactivate()
	}
	s.accounts = append(s.accounts, a)
	a.context.Activate(reason)
	s.logger.Debug("account added", "account", a.identifier, "reason", reason)
	return s.Save()
}

// Activate makes an account that is already in the store current.
//
// a may be a new instance carrying fresh user or credential data. It takes
// over the Context of the stored account, so an account keeps one Context
// for as long as it is in the store.
//
// If a is already current it replaces the stored account in place and no
// lifecycle callbacks fire. Otherwise the current account is deactivated, a moves to
// the tail and is activated with ReasonNormal.
func (s *Store[U, C]) Activate(a *Account[U, C]) error {
	i := s.index(a.identifier)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, a.identifier)
	}
	if stored := s.accounts[i]; stored != a {
		a.context = stored.context
		if o, ok := a.context.(CredentialObserver[C]); ok {
			o.HandleCredentialUpdate(a.credential)
		}
	}
	last := len(s.accounts) - 1
	if i == last {
		s.accounts[i] = a
		return s.Save()
	}

	s.accounts[last].context.Deactivate()
	s.accounts = slices.Delete(s.accounts, i, i+1)
	s.accounts = append(s.accounts, a)
	a.context.Activate(ReasonNormal)
	s.logger.Debug("account activated", "account", a.identifier)
	return s.Save()
}

// RemoveAccount deletes the account with the given identifier. When it was
// current, the new tail is activated with ReasonNormal.
func (s *Store[U, C]) RemoveAccount(identifier string) error {
	i := s.index(identifier)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, identifier)
	}
	wasCurrent := i == len(s.accounts)-1
	s.remove(i, wasCurrent)
	if cur, ok := s.Current(); ok && wasCurrent {
		cur.context.Activate(ReasonNormal)
	}
	return s.Save()
}

// RemoveAccounts deletes every account for which match returns true and
// writes the file once. Remaining accounts keep their order. If the current
// account changed, the new one is activated with ReasonNormal.
//
// The matching set is taken before any removal. If an identifier from that
// set disappears while the batch runs, the remaining removals are abandoned
// and ErrAccountNotFound is returned.
func (s *Store[U, C]) RemoveAccounts(match func(*Account[U, C]) bool) error {
	var targets []string
	for _, a := range s.accounts {
		if match(a) {
			targets = append(targets, a.identifier)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	before, _ := s.currentIdentifier()
	for _, id := range targets {
		i := s.index(id)
		if i < 0 {
			err := fmt.Errorf("%w: %s", ErrAccountNotFound, id)
			return errors.Join(err, s.Save())
		}
		s.remove(i, id == before)
	}

	if after, ok := s.currentIdentifier(); ok && after != before {
		s.accounts[len(s.accounts)-1].context.Activate(ReasonNormal)
	}
	return s.Save()
}

// Update replaces the user of the account identified by user.ID().
func (s *Store[U, C]) Update(user U) error {
	i := s.index(user.ID())
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, user.ID())
	}
	if err := s.accounts[i].Update(user); err != nil {
		return err
	}
	return s.Save()
}

// Save encodes the whole list and replaces the account file. Mutating
// methods call it themselves. On failure the in-memory list is kept and the
// error wraps ErrSave.
func (s *Store[U, C]) Save() error {
	records := make([]record[U], 0, len(s.accounts))
	for _, a := range s.accounts {
		rec, err := encodeAccount(a, s.codec, s.credentials)
		if err != nil {
			return s.saveFailed(err)
		}
		records = append(records, rec)
	}
	data, err := s.codec.Marshal(records)
	if err != nil {
		return s.saveFailed(err)
	}
	if err := replaceAccountFile(s.path, data); err != nil {
		return s.saveFailed(err)
	}
	// The rename replaced the inode, so the attribute has to be set again.
	s.excludeFromBackup()
	return nil
}

func (s *Store[U, C]) saveFailed(err error) error {
	s.logger.Error("saving accounts failed", "path", s.path, "error", err)
	return fmt.Errorf("%w: %w", ErrSave, err)
}

func (s *Store[U, C]) load() ([]*Account[U, C], error) {
	data, ok, err := readAccountFile(s.path)
	if err != nil {
		s.logger.Warn("reading accounts failed, starting empty", "path", s.path, "error", err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []record[U]
	if err := s.codec.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt accounts file, starting empty", "path", s.path, "error", err)
		return nil, err
	}

	accounts := make([]*Account[U, C], 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.Identifier]; dup {
			s.logger.Warn("duplicate account in file, starting empty", "path", s.path, "account", rec.Identifier)
			return nil, fmt.Errorf("%w: %s appears twice", ErrDuplicateAccount, rec.Identifier)
		}
		seen[rec.Identifier] = struct{}{}

		a, err := decodeAccount(rec, s.codec, s.credentials, s.newContext)
		if err != nil {
			s.logger.Warn("decoding account failed, starting empty", "path", s.path, "error", err)
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (s *Store[U, C]) remove(i int, deactivate bool) {
	a := s.accounts[i]
	if deactivate {
		a.context.Deactivate()
	}
	a.context.HandleDeletion()
	s.accounts = slices.Delete(s.accounts, i, i+1)
	s.credentials.DeleteCredentialData(a.identifier)
	s.logger.Debug("account removed", "account", a.identifier)
}

func (s *Store[U, C]) excludeFromBackup() {
	if _, err := os.Stat(s.path); err != nil {
		return
	}
	if err := excludeFromBackup(s.path); err != nil {
		s.logger.Debug("excluding accounts file from backup failed", "path", s.path, "error", err)
	}
}

func (s *Store[U, C]) currentIdentifier() (string, bool) {
	cur, ok := s.Current()
	if !ok {
		return "", false
	}
	return cur.identifier, true
}

func (s *Store[U, C]) index(identifier string) int {
	return slices.IndexFunc(s.accounts, func(a *Account[U, C]) bool {
		return a.identifier == identifier
	})
}
