package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpavezs/actascli/internal/api"
)

// List prints the dashboard table of visible actas.
func (a *App) List(ctx context.Context) error {
	recs, err := a.recs.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "No se pudieron cargar las actas: %v\n", err)
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No hay actas registradas.")
		return nil
	}

	fmt.Fprintf(a.out, "%-26s %-30s %-12s %-10s %s\n", "ID", "TÍTULO", "FECHA", "ESTADO", "PARTICIPANTES")
	for _, r := range recs {
		fmt.Fprintf(a.out, "%-26s %-30s %-12s %-10s %d\n",
			r.ID, truncate(r.Titulo, 30), r.Fecha, r.Estado, len(r.Participantes))
	}
	return nil
}

// Show prints one acta in full.
func (a *App) Show(ctx context.Context, id string) error {
	var err error
	if id == "" {
		id, err = readLine(a.reader, "ID del acta", a.out)
		if err != nil {
			return err
		}
	}

	rec, err := a.recs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Acta no encontrada.")
		} else {
			fmt.Fprintf(a.out, "No se pudo cargar el acta: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Título:        %s\n", rec.Titulo)
	fmt.Fprintf(a.out, "Estado:        %s\n", rec.Estado)
	fmt.Fprintf(a.out, "Fecha:         %s (%s - %s)\n", rec.Fecha, rec.HoraInicio, rec.HoraFin)
	fmt.Fprintf(a.out, "Responsable:   %s\n", rec.Responsable)
	fmt.Fprintf(a.out, "Participantes: %s\n", strings.Join(rec.Participantes, ", "))
	fmt.Fprintf(a.out, "Objetivos:\n%s\n", rec.Objetivos)
	for _, s := range []struct{ label, text string }{
		{"Compromisos", rec.Compromisos},
		{"Minuta", rec.Minuta},
		{"Conclusiones", rec.Conclusiones},
		{"Notas", rec.Notas},
	} {
		if s.text != "" {
			fmt.Fprintf(a.out, "%s:\n%s\n", s.label, s.text)
		}
	}
	return nil
}

// Delete removes an acta after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	var err error
	if id == "" {
		id, err = readLine(a.reader, "ID del acta a eliminar", a.out)
		if err != nil {
			return err
		}
	}

	confirm, err := readLine(a.reader, fmt.Sprintf("¿Eliminar el acta %s? (s/n)", id), a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "s" {
		fmt.Fprintln(a.out, "Operación cancelada.")
		return nil
	}

	if err := a.recs.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error al eliminar el acta: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Acta eliminada.")
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
