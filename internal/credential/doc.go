// Package credential provides account.CredentialStore implementations that
// seal credential bytes before they reach the account file.
//
//   - PassphraseStore derives a key from a passphrase with scrypt and seals
//     each credential with ChaCha20-Poly1305 under a fresh salt.
//   - KeychainStore keeps a random per-account key in a keychain.Store and
//     seals with XChaCha20-Poly1305 under a random nonce. Removing the
//     account deletes the key.
//
// Both bind the sealed blob to the account identifier, so a blob copied to
// another account's record fails to open.
package credential
