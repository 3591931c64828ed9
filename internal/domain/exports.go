package domain

import (
	"roster/internal/account"
	interfaces "roster/internal/domain/interfaces"
	types "roster/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	User       = types.User
	Credential = types.Credential
)

// Account and AccountStore bind the generic account package to the CLI's
// user and credential types.
type (
	Account        = account.Account[User, Credential]
	AccountStore   = account.Store[User, Credential]
	AccountContext = account.Context[User]
	ContextFactory = account.ContextFactory[User, Credential]
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AccountService = interfaces.AccountService
)

// MaskToken hides all but the tail of a token for display.
var MaskToken = types.MaskToken
