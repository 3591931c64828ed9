// Package app wires application dependencies for the CLI.
//
// It loads Config from <home>/config.yaml, builds the credential store,
// codec, audit log and account store it names, and exposes them to the
// commands through App.
package app
