package account

import "fmt"

// ActivationReason tells a Context why it is being activated.
type ActivationReason int

const (
	// ReasonNormal covers resuming the persisted current account on open
	// and switching back to an account already in the store.
	ReasonNormal ActivationReason = iota
	// ReasonRegister marks an account that was just created.
	ReasonRegister
	// ReasonLogin marks an existing external account that was just added.
	ReasonLogin
)

func (r ActivationReason) String() string {
	switch r {
	case ReasonNormal:
		return "normal"
	case ReasonRegister:
		return "register"
	case ReasonLogin:
		return "login"
	default:
		return fmt.Sprintf("ActivationReason(%d)", int(r))
	}
}
