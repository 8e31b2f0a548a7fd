// Package models defines the data shapes exchanged with the actas API.
// All entities are owned and validated by the server; the client treats
// them as read-only snapshots.
package models

// UserProfile is a registered user as returned by /profile and /users.
// Opaque beyond id/name/roles; the client never mutates it.
type UserProfile struct {
	ID     string   `json:"_id"`
	Nombre string   `json:"nombre"`
	Cargo  string   `json:"cargo,omitempty"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles,omitempty"`
}
