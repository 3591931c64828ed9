// Package commands defines the roster CLI.
//
// Commands
//
//   - add        Register a new account and make it current
//   - login      Add an account issued elsewhere and make it current
//   - list       Show all accounts, current last
//   - current    Show the current account
//   - switch     Make another account current
//   - rename     Change an account's display name
//   - refresh    Replace an account's tokens
//   - remove     Delete one or more accounts
//   - token      Print the current account's access token
//   - history    Show the audit trail
//
// # Implementation
//
// The root command loads <home>/config.yaml, applies flag overrides and
// builds the app before any subcommand runs; the audit log is closed after
// the subcommand returns.
package commands
