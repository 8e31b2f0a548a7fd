// Package records holds the client-side collection of actas and the
// registered-user roster, kept consistent with the last successful
// server responses, plus the draft aggregate used by the creation form.
package records

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jpavezs/actascli/internal/api"
	"github.com/jpavezs/actascli/internal/logging"
	"github.com/jpavezs/actascli/internal/models"
)

// Session is the slice of session state the store depends on. The
// session store satisfies it. The store passes the token through
// without checking presence; callers gate on session state.
type Session interface {
	Token() string
	CurrentUserID() string
}

// Store caches actas and the user roster. The acta cache always equals
// the last successful List with the successful create/update/delete
// patches applied in completion order; a failed mutation never touches
// it.
type Store struct {
	api     api.Client
	session Session
	log     logging.Logger

	mu      sync.RWMutex
	actas   []models.ActaRecord
	roster  []models.UserProfile
	loading bool
	errMsg  string
	lastErr error
}

func NewStore(apiClient api.Client, sess Session, log logging.Logger) *Store {
	return &Store{api: apiClient, session: sess, log: log}
}

// AutoLoad is the token-transition hook: a transition into a non-empty
// token triggers a background refresh; transitions to empty are ignored.
func (s *Store) AutoLoad(token string) {
	if token == "" {
		return
	}
	go s.Refresh(context.Background())
}

// Refresh loads the acta list and the user roster concurrently. The two
// fetches fail independently; either failure lands in the shared error
// slot, last write wins. Loading stays true until both settle.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.lastErr = nil
	s.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		_, err := s.List(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.ListUsers(ctx)
		return err
	})
	_ = g.Wait()

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// List fetches all visible actas and replaces the cache wholesale.
func (s *Store) List(ctx context.Context) ([]models.ActaRecord, error) {
	recs, err := s.api.ListActas(ctx, s.session.Token())
	if err != nil {
		s.fail(ctx, "No se pudieron cargar las actas", err)
		return nil, err
	}
	s.mu.Lock()
	s.actas = recs
	s.mu.Unlock()
	return copyActas(recs), nil
}

// Get fetches a single acta. Read-through: the cache is not consulted
// and not updated.
func (s *Store) Get(ctx context.Context, id string) (*models.ActaRecord, error) {
	rec, err := s.api.GetActa(ctx, s.session.Token(), id)
	if err != nil {
		s.fail(ctx, "No se pudo cargar el acta", err)
		return nil, err
	}
	return rec, nil
}

// Create submits the draft with responsable set to the current user,
// appends the server-returned record to the cache, and returns it.
func (s *Store) Create(ctx context.Context, d *Draft) (*models.ActaRecord, error) {
	payload := d.Payload(s.session.CurrentUserID())
	rec, err := s.api.CreateActa(ctx, s.session.Token(), payload)
	if err != nil {
		s.fail(ctx, "Error al guardar el acta", err)
		return nil, err
	}
	s.mu.Lock()
	s.actas = append(s.actas, *rec)
	s.mu.Unlock()
	return rec, nil
}

// Update submits a partial update. On success the cached entry with the
// same id is replaced in place; on failure the cache is untouched.
func (s *Store) Update(ctx context.Context, id string, patch api.ActaPatch) (*models.ActaRecord, error) {
	rec, err := s.api.UpdateActa(ctx, s.session.Token(), id, patch)
	if err != nil {
		s.fail(ctx, "Error al actualizar el acta", err)
		return nil, err
	}
	s.mu.Lock()
	for i := range s.actas {
		if s.actas[i].ID == id {
			s.actas[i] = *rec
			break
		}
	}
	s.mu.Unlock()
	return rec, nil
}

// Delete removes the acta remotely, then from the cache by id. On
// failure the cache is untouched.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteActa(ctx, s.session.Token(), id); err != nil {
		s.fail(ctx, "Error al eliminar el acta", err)
		return err
	}
	s.mu.Lock()
	for i := range s.actas {
		if s.actas[i].ID == id {
			s.actas = append(s.actas[:i], s.actas[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// ListUsers fetches the full registered-user roster and replaces the
// cached one wholesale. Used as the lookup source for participant
// selection.
func (s *Store) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.api.ListUsers(ctx, s.session.Token())
	if err != nil {
		s.fail(ctx, "No se pudieron cargar los usuarios", err)
		return nil, err
	}
	s.mu.Lock()
	s.roster = users
	s.mu.Unlock()
	return copyUsers(users), nil
}

// Actas returns a copy of the cached acta collection.
func (s *Store) Actas() []models.ActaRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActas(s.actas)
}

// Roster returns a copy of the cached user roster.
func (s *Store) Roster() []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.roster)
}

// Loading reports whether a Refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the shared error slot: the most recent failure and
// its user-facing message. Reset at the start of each Refresh.
func (s *Store) LastError() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg, s.lastErr
}

func (s *Store) fail(ctx context.Context, msg string, err error) {
	s.mu.Lock()
	s.errMsg = msg
	s.lastErr = err
	s.mu.Unlock()
	s.log.Error(ctx, "record store operation failed", "msg", msg, "error", err)
}

func copyActas(in []models.ActaRecord) []models.ActaRecord {
	out := make([]models.ActaRecord, len(in))
	copy(out, in)
	return out
}

func copyUsers(in []models.UserProfile) []models.UserProfile {
	out := make([]models.UserProfile, len(in))
	copy(out, in)
	return out
}
