package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/juris-lab/themis/pkg/domain/model"
)

func TestExpediente_CaseNumber(t *testing.T) {
	e := &model.Expediente{NoExpediente: "001-011-2023-RECA-00123"}
	gt.S(t, e.CaseNumber()).Equal("001-011-2023-RECA-00123")

	empty := &model.Expediente{}
	gt.S(t, empty.CaseNumber()).Equal("N/D")
}

func TestExpediente_DecisionDate(t *testing.T) {
	tests := []struct {
		name  string
		fecha string
		want  string
	}{
		{
			name:  "ISO timestamp",
			fecha: "2023-05-17T00:00:00",
			want:  "2023-05-17",
		},
		{
			name:  "date only",
			fecha: "2023-05-17",
			want:  "2023-05-17",
		},
		{
			name:  "empty",
			fecha: "",
			want:  "Sin fecha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.Expediente{FechaFallo: tt.fecha}
			gt.S(t, e.DecisionDate()).Equal(tt.want)
		})
	}
}

func TestExpediente_Parties(t *testing.T) {
	e := &model.Expediente{Involucrados: "  Juan Pérez vs. Banco Popular  "}
	gt.S(t, e.Parties()).Equal("Juan Pérez vs. Banco Popular")
}
