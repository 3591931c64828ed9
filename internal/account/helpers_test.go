package account_test

import (
	"errors"
	"fmt"

	"roster/internal/account"
)

type testUser struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
}

func (u testUser) ID() string { return u.UserID }

type testCredential struct {
	Token string `json:"token"`
}

// event is one lifecycle callback observed by a recordingContext.
type event struct {
	Account string
	Call    string
}

type recorder struct {
	events []event
}

func (r *recorder) factory() account.ContextFactory[testUser, testCredential] {
	return func(u testUser, _ testCredential) account.Context[testUser] {
		return &recordingContext{id: u.ID(), rec: r}
	}
}

func (r *recorder) reset() { r.events = nil }

func (r *recorder) calls(id string) []string {
	var out []string
	for _, e := range r.events {
		if e.Account == id {
			out = append(out, e.Call)
		}
	}
	return out
}

type recordingContext struct {
	id  string
	rec *recorder
}

func (c *recordingContext) add(call string) {
	c.rec.events = append(c.rec.events, event{Account: c.id, Call: call})
}

func (c *recordingContext) Activate(reason account.ActivationReason) {
	c.add("activate:" + reason.String())
}
func (c *recordingContext) Deactivate()                 { c.add("deactivate") }
func (c *recordingContext) HandleUserUpdate(u testUser) { c.add("update:" + u.Name) }
func (c *recordingContext) HandleDeletion()             { c.add("delete") }

// fakeCredentialStore prefixes stored bytes so tests can tell the stored
// form from the serialised credential.
type fakeCredentialStore struct {
	deleted  []string
	storeErr error
	loadErr  error
}

const fakePrefix = "sealed:"

func (f *fakeCredentialStore) StoreCredentialData(data []byte, identifier string) ([]byte, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return append([]byte(fakePrefix+identifier+":"), data...), nil
}

func (f *fakeCredentialStore) LoadCredentialData(identifier string, info []byte) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	prefix := fakePrefix + identifier + ":"
	if len(info) < len(prefix) || string(info[:len(prefix)]) != prefix {
		return nil, fmt.Errorf("credential for %q not sealed by this store", identifier)
	}
	return info[len(prefix):], nil
}

func (f *fakeCredentialStore) DeleteCredentialData(identifier string) {
	f.deleted = append(f.deleted, identifier)
}

var errBoom = errors.New("boom")
