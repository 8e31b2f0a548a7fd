// Package guard gates protected views on session state. It holds no
// state of its own; the decision is derived entirely from the session
// store.
package guard

import "github.com/jpavezs/actascli/internal/session"

// Decision is the outcome of evaluating the guard.
type Decision int

const (
	// Pending: the startup resolve is still in flight; show a
	// placeholder and retry.
	Pending Decision = iota
	// Denied: no valid session once resolved; send to login.
	Denied
	// Granted: render the protected view.
	Granted
)

// Evaluate maps session state to a gate decision.
func Evaluate(st session.State) Decision {
	switch st {
	case session.StateResolving:
		return Pending
	case session.StateAuthenticated:
		return Granted
	default:
		return Denied
	}
}
