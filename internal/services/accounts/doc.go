// Package accounts manages the signed-in accounts of a roster store.
//
// It generates identifiers for new accounts, resolves identifier prefixes
// typed on the command line, and maps user-level actions (switch, rename,
// refresh, remove) onto the account store's lifecycle operations.
package accounts
