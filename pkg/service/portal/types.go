package portal

import "github.com/juris-lab/themis/pkg/domain/model"

// searchResponse is the DataTables-style payload the portal returns
// for each search page.
type searchResponse struct {
	Draw            int             `json:"draw"`
	RecordsTotal    int             `json:"recordsTotal"`
	RecordsFiltered int             `json:"recordsFiltered"`
	Data            []expedienteRow `json:"data"`
}

// expedienteRow is one record in a search page.
type expedienteRow struct {
	NoExpediente string `json:"noExpediente"`
	FechaFallo   string `json:"fechaFallo"`
	Involucrados string `json:"involucrados"`
	URLBlob      string `json:"urlBlob"`
}

func (r expedienteRow) toModel() *model.Expediente {
	return &model.Expediente{
		NoExpediente: r.NoExpediente,
		FechaFallo:   r.FechaFallo,
		Involucrados: r.Involucrados,
		URLBlob:      r.URLBlob,
	}
}
