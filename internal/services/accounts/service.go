package accounts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roster/internal/account"
	"roster/internal/domain"
)

var (
	// ErrAmbiguousID is returned when an id prefix matches several accounts.
	ErrAmbiguousID = errors.New("ambiguous account id")

	// ErrNameRequired is returned when an account name is empty.
	ErrNameRequired = errors.New("account name required")

	// ErrIDRequired is returned by Login for a user without an id.
	ErrIDRequired = errors.New("account id required")
)

// Service is the account manager used by the CLI.
type Service struct {
	store      *domain.AccountStore
	newContext domain.ContextFactory
	now        func() time.Time
	newID      func() string
}

// New returns a Service over store. newContext must be the factory the
// store was opened with.
func New(store *domain.AccountStore, newContext domain.ContextFactory) *Service {
	return &Service{
		store:      store,
		newContext: newContext,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Add registers a new account under a generated id and makes it current.
func (s *Service) Add(name, email string, cred domain.Credential) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrNameRequired
	}
	user := domain.User{
		UserID:    s.newID(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Register(account.NewAccount(user, cred, s.newContext)); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login adds an account issued elsewhere and makes it current.
func (s *Service) Login(user domain.User, cred domain.Credential) error {
	if user.UserID == "" {
		return ErrIDRequired
	}
	if user.Name == "" {
		user.Name = user.UserID
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now().UTC()
	}
	return s.store.Login(account.NewAccount(user, cred, s.newContext))
}

// Switch makes the account matching id current.
func (s *Service) Switch(id string) (domain.User, error) {
	a, err := s.resolve(id)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.store.Activate(a); err != nil {
		return domain.User{}, err
	}
	return a.User(), nil
}

// Rename changes the display name of the account matching id.
func (s *Service) Rename(id, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrNameRequired
	}
	a, err := s.resolve(id)
	if err != nil {
		return domain.User{}, err
	}
	user := a.User()
	user.Name = name
	if err := s.store.Update(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Refresh replaces the credential of the account matching id. Credentials
// are fixed per Account, so a fresh Account is activated in its place and
// inherits the existing Session: the current account is refreshed in place
// with no lifecycle callbacks, any other one becomes current.
func (s *Service) Refresh(id string, cred domain.Credential) error {
	a, err := s.resolve(id)
	if err != nil {
		return err
	}
	return s.store.Activate(account.NewAccount(a.User(), cred, s.newContext))
}

// Remove deletes the accounts matching ids and reports how many were
// removed. Ids naming the same account count once. All ids are resolved
// before anything is removed; one unknown id aborts the whole call.
func (s *Service) Remove(ids ...string) (int, error) {
	var targets []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		a, err := s.resolve(id)
		if err != nil {
			return 0, err
		}
		if _, dup := seen[a.Identifier()]; dup {
			continue
		}
		seen[a.Identifier()] = struct{}{}
		targets = append(targets, a.Identifier())
	}

	var err error
	switch len(targets) {
	case 0:
	case 1:
		err = s.store.RemoveAccount(targets[0])
	default:
		err = s.store.RemoveAccounts(func(a *domain.Account) bool {
			_, ok := seen[a.Identifier()]
			return ok
		})
	}
	if err != nil && !errors.Is(err, account.ErrSave) {
		return 0, err
	}
	return len(targets), err
}

// List returns the users in store order, current last.
func (s *Service) List() []domain.User {
	accounts := s.store.Accounts()
	users := make([]domain.User, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, a.User())
	}
	return users
}

// Current returns the current user and credential.
func (s *Service) Current() (domain.User, domain.Credential, bool) {
	a, ok := s.store.Current()
	if !ok {
		return domain.User{}, domain.Credential{}, false
	}
	return a.User(), a.Credential(), true
}

// resolve finds the account whose identifier equals id or, failing that,
// the single account whose identifier starts with id.
func (s *Service) resolve(id string) (*domain.Account, error) {
	if a, ok := s.store.Account(id); ok {
		return a, nil
	}
	var match *domain.Account
	if id != "" {
		for _, a := range s.store.Accounts() {
			if !strings.HasPrefix(a.Identifier(), id) {
				continue
			}
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
			}
			match = a
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", account.ErrAccountNotFound, id)
	}
	return match, nil
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
