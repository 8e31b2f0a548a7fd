// Package cli is the terminal view layer: a REPL over the session and
// record stores.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jpavezs/actascli/internal/api"
	"github.com/jpavezs/actascli/internal/config"
	"github.com/jpavezs/actascli/internal/guard"
	"github.com/jpavezs/actascli/internal/logging"
	"github.com/jpavezs/actascli/internal/records"
	"github.com/jpavezs/actascli/internal/repositories/tokens"
	"github.com/jpavezs/actascli/internal/session"
	"github.com/jpavezs/actascli/internal/storage"
)

// App wires the stores together and drives the REPL. Every dependency
// is constructed once here and passed by reference; there are no
// package-level singletons.
type App struct {
	config *config.Config
	log    logging.Logger
	sess   *session.Store
	recs   *records.Store
	gate   *Gate
	reader *bufio.Reader
	out    io.Writer
	close  func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(os.Stderr, cfg.LogLevel)

	db, err := storage.Open(ctx, cfg.TokenDBPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, nil, log)
	sess, err := session.New(ctx, apiClient, tokens.NewSQLiteRepository(db), log)
	if err != nil {
		db.Close()
		return nil, err
	}
	recs := records.NewStore(apiClient, sess, log)
	sess.OnTokenChange(recs.AutoLoad)

	return &App{
		config: cfg,
		log:    log,
		sess:   sess,
		recs:   recs,
		gate:   NewGate(cfg.RegistrationKey),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		close:  db.Close,
	}, nil
}

// Run resolves any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.sess.Bootstrap(ctx); err != nil {
		fmt.Fprintln(a.out, "La sesión guardada expiró, inicia sesión nuevamente.")
	} else if u := a.sess.User(); u != nil {
		fmt.Fprintf(a.out, "Sesión restaurada: %s\n", u.Nombre)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) guardDecision() guard.Decision {
	return guard.Evaluate(a.sess.State())
}

func (a *App) status() string {
	switch a.sess.State() {
	case session.StateResolving:
		return "cargando"
	case session.StateAuthenticated:
		if u := a.sess.User(); u != nil {
			return u.Nombre
		}
		return "autenticado"
	default:
		return "anónimo"
	}
}
