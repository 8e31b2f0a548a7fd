package models

// Estado is the workflow state of an acta. The server owns transitions;
// the client only displays the value and attaches the initial one on
// creation.
type Estado string

const (
	EstadoPendiente Estado = "pendiente"
	EstadoEjecucion Estado = "ejecucion"
	EstadoFirma     Estado = "firma"
	EstadoFirmada   Estado = "firmada"
)

// ActaRecord is a meeting-minutes record as stored by the API.
// Participantes holds bare user ids; Responsable is the id of the user
// who created the record.
type ActaRecord struct {
	ID            string   `json:"_id"`
	Titulo        string   `json:"titulo"`
	Participantes []string `json:"participantes"`
	Fecha         string   `json:"fecha"`
	HoraInicio    string   `json:"hora_inicio"`
	HoraFin       string   `json:"hora_fin"`
	Objetivos     string   `json:"objetivos"`
	Compromisos   string   `json:"compromisos,omitempty"`
	Minuta        string   `json:"minuta,omitempty"`
	Conclusiones  string   `json:"conclusiones,omitempty"`
	Notas         string   `json:"notas,omitempty"`
	Estado        Estado   `json:"estado"`
	Responsable   string   `json:"responsable"`
}
