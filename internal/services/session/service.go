package session

import (
	"log/slog"
	"time"

	"roster/internal/account"
	"roster/internal/audit"
	"roster/internal/domain"
)

// Auditor receives one entry per lifecycle transition.
type Auditor interface {
	Log(entry audit.Entry) error
}

// Session is the lifecycle context of a single account.
type Session struct {
	store   string
	account string
	cred    domain.Credential
	active  bool
	deleted bool

	auditor Auditor
	logger  *slog.Logger
	now     func() time.Time
}

// Factory builds Sessions for the accounts of store. auditor may be nil.
type Factory struct {
	Store   string
	Auditor Auditor
	Logger  *slog.Logger
	Now     func() time.Time
}

// New returns the context factory handed to the account store.
func (f Factory) New() domain.ContextFactory {
	logger := f.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := f.Now
	if now == nil {
		now = time.Now
	}
	return func(user domain.User, cred domain.Credential) domain.AccountContext {
		return &Session{
			store:   f.Store,
			account: user.ID(),
			cred:    cred,
			auditor: f.Auditor,
			logger:  logger.With("account", user.ID()),
			now:     now,
		}
	}
}

// Active reports whether the account is the signed-in one.
func (s *Session) Active() bool { return s.active }

// Deleted reports whether the account has been removed.
func (s *Session) Deleted() bool { return s.deleted }

func (s *Session) Activate(reason account.ActivationReason) {
	s.active = true
	s.logger.Debug("account activated", "reason", reason)
	if s.cred.Expired(s.now()) {
		s.logger.Warn("access token expired", "expires_at", s.cred.ExpiresAt)
	}
	s.record(audit.ActionActivated, reason.String())
}

func (s *Session) Deactivate() {
	s.active = false
	s.logger.Debug("account deactivated")
	s.record(audit.ActionDeactivated, "")
}

func (s *Session) HandleUserUpdate(user domain.User) {
	s.logger.Debug("account profile updated", "name", user.Name)
	s.record(audit.ActionUserUpdated, "")
}

// HandleCredentialUpdate replaces the credential checked on activation.
func (s *Session) HandleCredentialUpdate(cred domain.Credential) {
	s.cred = cred
}

func (s *Session) HandleDeletion() {
	s.active = false
	s.deleted = true
	s.logger.Debug("account deleted")
	s.record(audit.ActionDeleted, "")
}

func (s *Session) record(action audit.Action, reason string) {
	if s.auditor == nil {
		return
	}
	// The audit trail must not break account handling.
	if err := s.auditor.Log(audit.Entry{
		Action:  action,
		Account: s.account,
		Store:   s.store,
		Reason:  reason,
	}); err != nil {
		s.logger.Warn("writing audit entry failed", "action", action, "error", err)
	}
}

// Compile-time assertions that Session implements the account context.
var (
	_ domain.AccountContext                         = (*Session)(nil)
	_ account.CredentialObserver[domain.Credential] = (*Session)(nil)
)
