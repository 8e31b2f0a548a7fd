// Package tokens persists the session bearer token between runs.
// A single named key in the local database is the durable storage the
// session store reads at startup and purges on logout or on a failed
// profile fetch.
package tokens

import "context"

// Repository stores at most one token.
type Repository interface {
	// Load returns the persisted token, or "" if none is stored.
	Load(ctx context.Context) (string, error)

	// Save stores the token, replacing any previous one.
	Save(ctx context.Context, token string) error

	// Clear removes the persisted token. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
