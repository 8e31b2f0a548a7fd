package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpavezs/actascli/internal/api"
	"github.com/jpavezs/actascli/internal/records"
)

// Create walks the multi-section creation form. The draft accumulates
// values section by section and is validated only at the submit
// boundary; a validation failure jumps back to the offending section
// with everything else preserved, and a server failure keeps the whole
// draft for correction.
func (a *App) Create(ctx context.Context) error {
	d := &records.Draft{}

	titulo, err := readLine(a.reader, "Título del acta", a.out)
	if err != nil {
		return err
	}
	d.Titulo = titulo

	for _, sec := range records.Sections {
		if err := a.fillSection(d, sec); err != nil {
			return err
		}
	}

	for {
		if verr := d.Validate(); verr != nil {
			fmt.Fprintln(a.out, verr.Message)
			if verr.Section == "" {
				titulo, err := readLine(a.reader, "Título del acta", a.out)
				if err != nil {
					return err
				}
				d.Titulo = titulo
			} else if err := a.fillSection(d, verr.Section); err != nil {
				return err
			}
			continue
		}

		rec, err := a.recs.Create(ctx, d)
		if err != nil {
			var serr *api.StatusError
			if errors.As(err, &serr) {
				fmt.Fprintln(a.out, serr.Message)
			} else {
				fmt.Fprintln(a.out, "Error al guardar el acta. Por favor intente nuevamente.")
			}
			retry, rerr := readLine(a.reader, "¿Reintentar? (s/n)", a.out)
			if rerr != nil {
				return rerr
			}
			if strings.ToLower(retry) != "s" {
				return err
			}
			continue
		}

		fmt.Fprintf(a.out, "Acta creada exitosamente (id %s).\n", rec.ID)
		return nil
	}
}

func (a *App) fillSection(d *records.Draft, sec records.Section) error {
	switch sec {
	case records.SectionParticipantes:
		return a.fillParticipants(d)

	case records.SectionCalendario:
		fecha, err := readLine(a.reader, "Fecha (YYYY-MM-DD)", a.out)
		if err != nil {
			return err
		}
		inicio, err := readLine(a.reader, "Hora de inicio (HH:MM)", a.out)
		if err != nil {
			return err
		}
		fin, err := readLine(a.reader, "Hora de fin (HH:MM)", a.out)
		if err != nil {
			return err
		}
		d.Fecha, d.HoraInicio, d.HoraFin = fecha, inicio, fin
		return nil

	case records.SectionObjetivos:
		return fillText(a, "Objetivos", &d.Objetivos)
	case records.SectionCompromisos:
		return fillText(a, "Compromisos", &d.Compromisos)
	case records.SectionMinuta:
		return fillText(a, "Minuta", &d.Minuta)
	case records.SectionConclusiones:
		return fillText(a, "Conclusiones", &d.Conclusiones)
	case records.SectionNotas:
		return fillText(a, "Notas", &d.Notas)
	}
	return nil
}

func fillText(a *App, label string, dst *string) error {
	text, err := readMultiline(a.reader, label, a.out)
	if err != nil {
		return err
	}
	*dst = text
	return nil
}

// fillParticipants is the search-and-pick flow over the cached roster:
// a term filters by name, role, or email; a numbered match is added
// (idempotently); "-<id>" removes a confirmed participant; an empty
// term closes the section.
func (a *App) fillParticipants(d *records.Draft) error {
	for {
		a.printParticipants(d)
		term, err := readLine(a.reader, "Buscar participante (-id para quitar, vacío para terminar)", a.out)
		if err != nil {
			return err
		}
		if term == "" {
			return nil
		}
		if strings.HasPrefix(term, "-") {
			d.RemoveParticipant(strings.TrimPrefix(term, "-"))
			continue
		}

		matches := records.FilterRoster(a.recs.Roster(), term)
		if len(matches) == 0 {
			fmt.Fprintln(a.out, "Sin resultados.")
			continue
		}
		for i, u := range matches {
			fmt.Fprintf(a.out, "%d. %s (%s) <%s>\n", i+1, u.Nombre, u.Cargo, u.Email)
		}

		pick, err := readLine(a.reader, "Número a agregar (vacío para omitir)", a.out)
		if err != nil {
			return err
		}
		if pick == "" {
			continue
		}
		idx, err := strconv.Atoi(pick)
		if err != nil || idx < 1 || idx > len(matches) {
			fmt.Fprintln(a.out, "Selección inválida.")
			continue
		}
		if d.AddParticipant(matches[idx-1]) {
			fmt.Fprintf(a.out, "Agregado: %s\n", matches[idx-1].Nombre)
		} else {
			fmt.Fprintln(a.out, "Ya estaba agregado.")
		}
	}
}

func (a *App) printParticipants(d *records.Draft) {
	if len(d.Participantes) == 0 {
		fmt.Fprintln(a.out, "No hay participantes agregados.")
		return
	}
	fmt.Fprintln(a.out, "Participantes confirmados:")
	for _, p := range d.Participantes {
		fmt.Fprintf(a.out, "  [%s] %s (%s)\n", p.ID, p.Nombre, p.Cargo)
	}
}
