package model

import "strings"

// Sentinel values used when the portal omits a field.
const (
	UnknownCaseNumber = "N/D"
	UnknownDate       = "Sin fecha"
)

// Expediente is one case record as returned by the portal search API.
// Records are immutable once received; they are owned by the session
// that issued the search.
type Expediente struct {
	NoExpediente string
	FechaFallo   string
	Involucrados string
	URLBlob      string
}

// CaseNumber returns the docket number, or "N/D" when absent.
func (e *Expediente) CaseNumber() string {
	if e.NoExpediente == "" {
		return UnknownCaseNumber
	}
	return e.NoExpediente
}

// DecisionDate returns the date part of the ruling timestamp
// (the portal sends ISO timestamps like "2023-05-17T00:00:00"),
// or "Sin fecha" when absent.
func (e *Expediente) DecisionDate() string {
	if e.FechaFallo == "" {
		return UnknownDate
	}
	date, _, _ := strings.Cut(e.FechaFallo, "T")
	return date
}

// Parties returns the trimmed parties-involved text.
func (e *Expediente) Parties() string {
	return strings.TrimSpace(e.Involucrados)
}
