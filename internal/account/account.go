package account

import "fmt"

// User is the profile half of an account. ID must be stable and unique
// across the accounts of a store.
type User interface {
	ID() string
}

// Account binds a user, its credential and the Context that receives the
// account's lifecycle callbacks.
type Account[U User, C any] struct {
	identifier string
	user       U
	credential C
	context    Context[U]
}

// NewAccount builds an account for user and credential and constructs its
// Context. The identifier is fixed to user.ID().
func NewAccount[U User, C any](user U, credential C, newContext ContextFactory[U, C]) *Account[U, C] {
	return &Account[U, C]{
		identifier: user.ID(),
		user:       user,
		credential: credential,
		context:    newContext(user, credential),
	}
}

// Identifier returns the id the account was created with.
func (a *Account[U, C]) Identifier() string { return a.identifier }

// User returns the current user profile.
func (a *Account[U, C]) User() U { return a.user }

// Credential returns the credential the account was created with.
func (a *Account[U, C]) Credential() C { return a.credential }

// Context returns the account's lifecycle context.
func (a *Account[U, C]) Context() Context[U] { return a.context }

// Update replaces the user profile and notifies the context. The new user
// must carry the account's identifier.
func (a *Account[U, C]) Update(user U) error {
	if user.ID() != a.identifier {
		return fmt.Errorf("%w: got %q, want %q", ErrIdentifierMismatch, user.ID(), a.identifier)
	}
	a.user = user
	a.context.HandleUserUpdate(user)
	return nil
}

// record is the persisted form of an Account. Credential holds the bytes
// returned by the CredentialStore, not the serialised credential.
type record[U User] struct {
	Identifier string `json:"identifier"`
	User       U      `json:"user"`
	Credential []byte `json:"credential"`
}

func encodeAccount[U User, C any](a *Account[U, C], codec Codec, creds CredentialStore) (record[U], error) {
	if creds == nil {
		return record[U]{}, ErrNoCredentialStore
	}
	raw, err := codec.Marshal(a.credential)
	if err != nil {
		return record[U]{}, fmt.Errorf("encoding credential for %q: %w", a.identifier, err)
	}
	stored, err := creds.StoreCredentialData(raw, a.identifier)
	if err != nil {
		return record[U]{}, fmt.Errorf("storing credential for %q: %w", a.identifier, err)
	}
	return record[U]{
		Identifier: a.identifier,
		User:       a.user,
		Credential: stored,
	}, nil
}

func decodeAccount[U User, C any](
	rec record[U],
	codec Codec,
	creds CredentialStore,
	newContext ContextFactory[U, C],
) (*Account[U, C], error) {
	if creds == nil {
		return nil, ErrNoCredentialStore
	}
	if rec.User.ID() != rec.Identifier {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrIdentifierMismatch, rec.User.ID(), rec.Identifier)
	}
	raw, err := creds.LoadCredentialData(rec.Identifier, rec.Credential)
	if err != nil {
		return nil, fmt.Errorf("%w for %q: %w", ErrCredentialLoad, rec.Identifier, err)
	}
	var credential C
	if err := codec.Unmarshal(raw, &credential); err != nil {
		return nil, fmt.Errorf("decoding credential for %q: %w", rec.Identifier, err)
	}
	return &Account[U, C]{
		identifier: rec.Identifier,
		user:       rec.User,
		credential: credential,
		context:    newContext(rec.User, credential),
	}, nil
}
