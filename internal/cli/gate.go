package cli

import "strings"

// Gate is the registration gate: a static shared-secret check that must
// pass once before the registration form is shown. It is a low-friction
// deterrent, not a security boundary; retries are unlimited.
type Gate struct {
	key      string
	unlocked bool
}

func NewGate(key string) *Gate {
	return &Gate{key: key}
}

// Unlocked reports whether the gate has already been passed.
func (g *Gate) Unlocked() bool {
	return g.unlocked
}

// Try checks the candidate key. A match unlocks the gate for the rest
// of the session; a mismatch leaves it locked.
func (g *Gate) Try(input string) bool {
	if strings.TrimSpace(input) == g.key {
		g.unlocked = true
	}
	return g.unlocked
}
