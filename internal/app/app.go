package app

import (
	"roster/internal/audit"
	"roster/internal/domain"
)

// App is the dependency graph the commands run against.
type App struct {
	Config   Config
	Accounts domain.AccountService
	Store    *domain.AccountStore

	audit *audit.Logger
}

// AuditPath returns the audit log location.
func (a *App) AuditPath() string { return auditPath(a.Config.Home) }

// Close releases the audit log.
func (a *App) Close() error {
	if a.audit == nil {
		return nil
	}
	return a.audit.Close()
}
