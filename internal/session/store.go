// Package session holds the authenticated user, the bearer token, and
// the resolving flag, and runs the register/login/logout/fetch-profile
// lifecycle against the API. The token is the single source of truth
// for "authenticated"; the user profile is always derived from it by a
// fetch, never carried over across token changes.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/jpavezs/actascli/internal/api"
	"github.com/jpavezs/actascli/internal/logging"
	"github.com/jpavezs/actascli/internal/models"
	"github.com/jpavezs/actascli/internal/repositories/tokens"
)

// State of the session lifecycle. An invalid token collapses straight
// back to StateAnonymous once its profile fetch fails; there is no
// separate invalid state and no time-based expiry.
type State int

const (
	// StateAnonymous: no token.
	StateAnonymous State = iota
	// StateResolving: a persisted token exists and its profile fetch
	// has not settled yet.
	StateResolving
	// StateAuthenticated: token and profile both present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Store is the session store. Safe for use from the REPL goroutine and
// the background refresh at the same time.
type Store struct {
	api    api.Client
	tokens tokens.Repository
	log    logging.Logger

	mu      sync.RWMutex
	user    *models.UserProfile
	token   string
	loading bool
	onToken []func(token string)
}

// New builds the store and loads any persisted token. If one exists the
// session starts in StateResolving; Bootstrap settles it.
func New(ctx context.Context, apiClient api.Client, repo tokens.Repository, log logging.Logger) (*Store, error) {
	tok, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load persisted token: %w", err)
	}
	return &Store{
		api:     apiClient,
		tokens:  repo,
		log:     log,
		token:   tok,
		loading: tok != "",
	}, nil
}

// OnTokenChange registers fn to run whenever the token transitions,
// including to "". Used by the record store to trigger its auto-load.
func (s *Store) OnTokenChange(fn func(token string)) {
	s.mu.Lock()
	s.onToken = append(s.onToken, fn)
	s.mu.Unlock()
}

// Bootstrap performs the startup check: if a persisted token exists,
// announce it to subscribers and resolve it into a profile. A failed
// fetch purges the stale token and reports the error; the session is
// then anonymous.
func (s *Store) Bootstrap(ctx context.Context) error {
	tok := s.Token()
	if tok == "" {
		s.setLoading(false)
		return nil
	}
	s.notify(tok)
	_, err := s.FetchProfile(ctx, "")
	s.setLoading(false)
	return err
}

// Register forwards the payload to the API. It never mutates session
// state: a fresh registration does not log the user in.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return resp, nil
}

// Login exchanges credentials for a token, persists it, then fetches
// the profile with that same token. Token and user are set together or
// not at all: a failed login leaves the session untouched, and a failed
// profile fetch after a successful exchange clears both.
func (s *Store) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	s.setToken(ctx, resp.Token)
	u, err := s.FetchProfile(ctx, resp.Token)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FetchProfile resolves the override token, or the stored one when the
// override is empty, into a user profile. With no token at all it is a
// no-op. This is the sole path by which an invalid or expired token is
// discovered: on failure the user, the token, and the persisted token
// are all purged before the error is returned.
func (s *Store) FetchProfile(ctx context.Context, override string) (*models.UserProfile, error) {
	tok := override
	if tok == "" {
		tok = s.Token()
	}
	if tok == "" {
		return nil, nil
	}

	u, err := s.api.Profile(ctx, tok)
	if err != nil {
		s.clear(ctx)
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return u, nil
}

// Logout notifies the API best-effort (a failure is logged, never
// surfaced) and unconditionally clears the session and the persisted
// token. Logout always succeeds locally.
func (s *Store) Logout(ctx context.Context) {
	if tok := s.Token(); tok != "" {
		if err := s.api.Logout(ctx, tok); err != nil {
			s.log.Warn(ctx, "logout notification failed", "error", err)
		}
	}
	s.clear(ctx)
}

// State derives the lifecycle state from the stored fields.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.loading:
		return StateResolving
	case s.token != "" && s.user != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// Token returns the current bearer token, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the authenticated profile, or nil.
func (s *Store) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// CurrentUserID returns the authenticated user's id, or "".
func (s *Store) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// Loading reports whether the startup resolve is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) setToken(ctx context.Context, tok string) {
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
	if err := s.tokens.Save(ctx, tok); err != nil {
		s.log.Warn(ctx, "failed to persist token", "error", err)
	}
	s.notify(tok)
}

func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	changed := s.token != "" || s.user != nil
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to remove persisted token", "error", err)
	}
	if changed {
		s.notify("")
	}
}

func (s *Store) notify(token string) {
	s.mu.RLock()
	subs := append(make([]func(string), 0, len(s.onToken)), s.onToken...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(token)
	}
}
