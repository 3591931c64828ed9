// Package session tracks the signed-in state of one account.
//
// A Session is the lifecycle context the account store drives: it follows
// activation and deactivation, records every transition to the audit log,
// and warns when an account becomes current with an expired access token.
package session
