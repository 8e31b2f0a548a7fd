// Package api is the HTTP adapter for the external actas API. It owns
// the wire contract only: base URL, JSON bodies, bearer auth, and the
// mapping from HTTP statuses to error classes. All business semantics
// (session lifecycle, caching) live in the stores that consume Client.
package api

import (
	"context"

	"github.com/jpavezs/actascli/internal/models"
)

// AuthResponse is the envelope returned by /register and /login.
type AuthResponse struct {
	Message string             `json:"message"`
	User    models.UserProfile `json:"user"`
	Token   string             `json:"token"`
}

// RegisterRequest is the payload for /register.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Cargo    string `json:"cargo,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActaPayload is the outgoing body for record creation: participants
// reduced to bare ids, initial estado and responsable attached.
type ActaPayload struct {
	Titulo        string        `json:"titulo"`
	Participantes []string      `json:"participantes"`
	Fecha         string        `json:"fecha"`
	HoraInicio    string        `json:"hora_inicio"`
	HoraFin       string        `json:"hora_fin"`
	Objetivos     string        `json:"objetivos"`
	Compromisos   string        `json:"compromisos,omitempty"`
	Minuta        string        `json:"minuta,omitempty"`
	Conclusiones  string        `json:"conclusiones,omitempty"`
	Notas         string        `json:"notas,omitempty"`
	Estado        models.Estado `json:"estado"`
	Responsable   string        `json:"responsable"`
}

// ActaPatch is a partial update body for PUT /actas/{id}.
type ActaPatch map[string]any

// Client defines one method per external API operation. Bearer calls
// take the token explicitly; the adapter never stores session state.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Profile(ctx context.Context, token string) (*models.UserProfile, error)
	Logout(ctx context.Context, token string) error

	ListActas(ctx context.Context, token string) ([]models.ActaRecord, error)
	GetActa(ctx context.Context, token, id string) (*models.ActaRecord, error)
	CreateActa(ctx context.Context, token string, payload ActaPayload) (*models.ActaRecord, error)
	UpdateActa(ctx context.Context, token, id string, patch ActaPatch) (*models.ActaRecord, error)
	DeleteActa(ctx context.Context, token, id string) error

	ListUsers(ctx context.Context, token string) ([]models.UserProfile, error)
}
