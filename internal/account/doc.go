// Package account keeps an ordered registry of signed-in accounts persisted
// to a single file.
//
// The last account in the list is the current one. Every mutating call on
// Store updates the list, drives the lifecycle callbacks of the affected
// accounts' Context, then rewrites the whole file through a temp file and a
// rename.
//
// Credentials never reach the file in their serialised form: the Codec
// output is handed to a pluggable CredentialStore, and only what it returns
// is written. PassthroughCredentialStore keeps the bytes as they are; see
// internal/credential for sealed variants.
//
// A Store is not safe for concurrent use.
package account
