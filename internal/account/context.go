package account

// Context receives the lifecycle callbacks of a single account.
//
// A Context starts inactive. Activate moves it to active and Deactivate back
// to inactive. HandleUserUpdate may arrive in either state. HandleDeletion is
// delivered once, right before the account leaves the store, and nothing
// follows it.
type Context[U User] interface {
	Activate(reason ActivationReason)
	Deactivate()
	HandleUserUpdate(user U)
	HandleDeletion()
}

// ContextFactory builds the Context owned by a new account. It is called
// once per Account, including accounts decoded from disk.
type ContextFactory[U User, C any] func(user U, credential C) Context[U]

// CredentialObserver is implemented by a Context that tracks the account's
// credential. Store.Activate calls it when a new Account instance takes
// over the Context, before any activation callback.
type CredentialObserver[C any] interface {
	HandleCredentialUpdate(credential C)
}
