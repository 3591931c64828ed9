// Package domain defines the account data models and service contracts
// shared by the CLI and its services. It contains plain types and
// interfaces only; persistence lives in internal/account.
package domain
