package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpavezs/actascli/internal/api"
	"github.com/jpavezs/actascli/internal/config"
	"github.com/jpavezs/actascli/internal/logging"
	"github.com/jpavezs/actascli/internal/models"
	"github.com/jpavezs/actascli/internal/records"
	"github.com/jpavezs/actascli/internal/session"
)

// ---- fakes ----

type memRepo struct{ token string }

func (m *memRepo) Load(ctx context.Context) (string, error)       { return m.token, nil }
func (m *memRepo) Save(ctx context.Context, token string) error   { m.token = token; return nil }
func (m *memRepo) Clear(ctx context.Context) error                { m.token = ""; return nil }

type fakeAPI struct {
	LoginResp   *api.AuthResponse
	ProfileResp *models.UserProfile
	UsersResp   []models.UserProfile

	CreateResp *models.ActaRecord
	CreateErr  error

	LastCreatePayload api.ActaPayload
	CreateCalls       int
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	return nil, nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	return f.LoginResp, nil
}

func (f *fakeAPI) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	u := *f.ProfileResp
	return &u, nil
}

func (f *fakeAPI) Logout(ctx context.Context, token string) error { return nil }

func (f *fakeAPI) ListActas(ctx context.Context, token string) ([]models.ActaRecord, error) {
	return nil, nil
}

func (f *fakeAPI) GetActa(ctx context.Context, token, id string) (*models.ActaRecord, error) {
	return nil, nil
}

func (f *fakeAPI) CreateActa(ctx context.Context, token string, p api.ActaPayload) (*models.ActaRecord, error) {
	f.CreateCalls++
	f.LastCreatePayload = p
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	r := *f.CreateResp
	return &r, nil
}

func (f *fakeAPI) UpdateActa(ctx context.Context, token, id string, p api.ActaPatch) (*models.ActaRecord, error) {
	return nil, nil
}

func (f *fakeAPI) DeleteActa(ctx context.Context, token, id string) error { return nil }

func (f *fakeAPI) ListUsers(ctx context.Context, token string) ([]models.UserProfile, error) {
	return append([]models.UserProfile(nil), f.UsersResp...), nil
}

func newTestApp(t *testing.T, fc *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()
	log := logging.New(io.Discard, "error")

	sess, err := session.New(ctx, fc, &memRepo{}, log)
	require.NoError(t, err)
	recs := records.NewStore(fc, sess, log)

	// authenticated session with user id 5, roster warmed up
	_, err = sess.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	_, err = recs.ListUsers(ctx)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{},
		log:    log,
		sess:   sess,
		recs:   recs,
		gate:   NewGate("clave"),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
		close:  func() error { return nil },
	}, out
}

func authedFake() *fakeAPI {
	return &fakeAPI{
		LoginResp:   &api.AuthResponse{Token: "T1"},
		ProfileResp: &models.UserProfile{ID: "5", Nombre: "Resp"},
		UsersResp: []models.UserProfile{
			{ID: "9", Nombre: "Pedro Páramo", Cargo: "Docente", Email: "pedro@e.com"},
			{ID: "10", Nombre: "Luisa Lane", Cargo: "Directora", Email: "luisa@e.com"},
		},
		CreateResp: &models.ActaRecord{ID: "n1", Titulo: "Sync", Estado: models.EstadoPendiente},
	}
}

// ---- tests ----

func TestCreate_FullWalkSubmitsReducedDraft(t *testing.T) {
	// title; search "pedro", pick 1, finish participants; schedule;
	// objetivos multiline; remaining sections empty
	input := strings.Join([]string{
		"Sync",       // título
		"pedro",      // buscar participante
		"1",          // agregar primer resultado
		"",           // terminar sección participantes
		"2024-01-01", // fecha
		"09:00",      // hora inicio
		"10:00",      // hora fin
		"x",          // objetivos
		"",           // fin objetivos
		"",           // compromisos
		"",           // minuta
		"",           // conclusiones
		"",           // notas
	}, "\n") + "\n"

	fc := authedFake()
	app, out := newTestApp(t, fc, input)

	require.NoError(t, app.Create(context.Background()))

	assert.Equal(t, 1, fc.CreateCalls)
	assert.Equal(t, "5", fc.LastCreatePayload.Responsable)
	assert.Equal(t, []string{"9"}, fc.LastCreatePayload.Participantes)
	assert.Equal(t, "2024-01-01", fc.LastCreatePayload.Fecha)
	assert.Equal(t, models.EstadoPendiente, fc.LastCreatePayload.Estado)
	assert.Contains(t, out.String(), "Acta creada exitosamente")

	// the new record landed in the local cache
	got := app.recs.Actas()
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

func TestCreate_EmptyTitleReportedFirstThenCorrected(t *testing.T) {
	input := strings.Join([]string{
		"",           // título vacío
		"pedro",      // participantes
		"1",          //
		"",           //
		"2024-01-01", // calendario
		"09:00",      //
		"10:00",      //
		"x",          // objetivos
		"",           //
		"", "", "", "", // secciones restantes
		"Sync", // título corregido tras el error de validación
	}, "\n") + "\n"

	fc := authedFake()
	app, out := newTestApp(t, fc, input)

	require.NoError(t, app.Create(context.Background()))

	assert.Contains(t, out.String(), "El título es requerido")
	assert.Equal(t, 1, fc.CreateCalls)
	assert.Equal(t, "Sync", fc.LastCreatePayload.Titulo)
}

func TestCreate_MissingParticipantsJumpsBackToSection(t *testing.T) {
	input := strings.Join([]string{
		"Sync",       // título
		"",           // sección participantes cerrada sin agregar
		"2024-01-01", // calendario
		"09:00",
		"10:00",
		"x", // objetivos
		"",
		"", "", "", "", // secciones restantes
		// validación falla: vuelve a participantes
		"pedro",
		"1",
		"",
	}, "\n") + "\n"

	fc := authedFake()
	app, out := newTestApp(t, fc, input)

	require.NoError(t, app.Create(context.Background()))

	assert.Contains(t, out.String(), "Debe agregar al menos un participante")
	assert.Equal(t, []string{"9"}, fc.LastCreatePayload.Participantes)
}

func TestCreate_ServerRejection_KeepsDraftForRetry(t *testing.T) {
	input := strings.Join([]string{
		"Sync",
		"pedro", "1", "",
		"2024-01-01", "09:00", "10:00",
		"x", "",
		"", "", "", "",
		"s", // reintentar tras el rechazo
	}, "\n") + "\n"

	fc := authedFake()
	fc.CreateErr = &api.StatusError{Status: 422, Message: "titulo duplicado"}
	app, out := newTestApp(t, fc, input)

	// both attempts are rejected; after the second the input is
	// exhausted and the walk gives up
	err := app.Create(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "titulo duplicado")
	// the draft survived to the retry: the same payload went out twice
	assert.Equal(t, 2, fc.CreateCalls)
	assert.Equal(t, "Sync", fc.LastCreatePayload.Titulo)
	// nothing landed in the cache
	assert.Empty(t, app.recs.Actas())
}
