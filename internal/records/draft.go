package records

import (
	"strings"

	"github.com/jpavezs/actascli/internal/api"
	"github.com/jpavezs/actascli/internal/models"
)

// Section identifies one tab of the creation form.
type Section string

const (
	SectionParticipantes Section = "participantes"
	SectionCalendario    Section = "calendario"
	SectionObjetivos     Section = "objetivos"
	SectionCompromisos   Section = "compromisos"
	SectionMinuta        Section = "minuta"
	SectionConclusiones  Section = "conclusiones"
	SectionNotas         Section = "notas"
)

// Sections lists the form tabs in display order.
var Sections = []Section{
	SectionParticipantes,
	SectionCalendario,
	SectionObjetivos,
	SectionCompromisos,
	SectionMinuta,
	SectionConclusiones,
	SectionNotas,
}

// ValidationError is a client-side form rejection. Section names the
// tab to jump to; it is empty for the title, which lives outside the
// tabs.
type ValidationError struct {
	Section Section
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Draft accumulates the acta under construction across the form
// sections. It is transient: never persisted until an explicit save,
// discarded on success or on navigating away. Participants carry full
// profiles until Payload reduces them to ids.
type Draft struct {
	Titulo        string
	Participantes []models.UserProfile
	Fecha         string
	HoraInicio    string
	HoraFin       string
	Objetivos     string
	Compromisos   string
	Minuta        string
	Conclusiones  string
	Notas         string
}

// AddParticipant adds u unless a participant with the same id is
// already present. Reports whether the list grew.
func (d *Draft) AddParticipant(u models.UserProfile) bool {
	for _, p := range d.Participantes {
		if p.ID == u.ID {
			return false
		}
	}
	d.Participantes = append(d.Participantes, u)
	return true
}

// RemoveParticipant removes the participant with the given id, if any.
func (d *Draft) RemoveParticipant(id string) {
	for i, p := range d.Participantes {
		if p.ID == id {
			d.Participantes = append(d.Participantes[:i], d.Participantes[i+1:]...)
			return
		}
	}
}

// Validate checks the draft at the submit boundary, fail-fast in fixed
// priority order: title, participants, schedule, objectives. Only the
// first failing rule is reported per cycle.
func (d *Draft) Validate() *ValidationError {
	if d.Titulo == "" {
		return &ValidationError{Message: "El título es requerido"}
	}
	if len(d.Participantes) == 0 {
		return &ValidationError{
			Section: SectionParticipantes,
			Message: "Debe agregar al menos un participante",
		}
	}
	if d.Fecha == "" || d.HoraInicio == "" || d.HoraFin == "" {
		return &ValidationError{
			Section: SectionCalendario,
			Message: "La fecha y horario son requeridos",
		}
	}
	if d.Objetivos == "" {
		return &ValidationError{
			Section: SectionObjetivos,
			Message: "Los objetivos son requeridos",
		}
	}
	return nil
}

// Payload reduces the draft to the outgoing creation body: bare
// participant ids, the fixed initial workflow state, and the current
// user as responsable.
func (d *Draft) Payload(responsable string) api.ActaPayload {
	ids := make([]string, 0, len(d.Participantes))
	for _, p := range d.Participantes {
		ids = append(ids, p.ID)
	}
	return api.ActaPayload{
		Titulo:        d.Titulo,
		Participantes: ids,
		Fecha:         d.Fecha,
		HoraInicio:    d.HoraInicio,
		HoraFin:       d.HoraFin,
		Objetivos:     d.Objetivos,
		Compromisos:   d.Compromisos,
		Minuta:        d.Minuta,
		Conclusiones:  d.Conclusiones,
		Notas:         d.Notas,
		Estado:        models.EstadoPendiente,
		Responsable:   responsable,
	}
}

// FilterRoster returns the roster entries whose name, role, or email
// contains term, case-insensitively. An empty term matches everyone.
func FilterRoster(roster []models.UserProfile, term string) []models.UserProfile {
	term = strings.ToLower(term)
	out := make([]models.UserProfile, 0, len(roster))
	for _, u := range roster {
		if strings.Contains(strings.ToLower(u.Nombre), term) ||
			(u.Cargo != "" && strings.Contains(strings.ToLower(u.Cargo), term)) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}
