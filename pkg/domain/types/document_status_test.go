package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/juris-lab/themis/pkg/domain/types"
)

func TestDocumentStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.DocumentStatus
		want   bool
	}{
		{
			name:   "valid ok",
			status: types.DocumentStatusOK,
			want:   true,
		},
		{
			name:   "valid error",
			status: types.DocumentStatusError,
			want:   true,
		},
		{
			name:   "invalid status",
			status: types.DocumentStatus("invalid"),
			want:   false,
		},
		{
			name:   "empty status",
			status: types.DocumentStatus(""),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsValid()).True()
			} else {
				gt.B(t, tt.status.IsValid()).False()
			}
		})
	}
}

func TestParseDocumentStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.DocumentStatus
		wantErr bool
	}{
		{
			name:    "valid ok",
			input:   "OK",
			want:    types.DocumentStatusOK,
			wantErr: false,
		},
		{
			name:    "valid error",
			input:   "Error",
			want:    types.DocumentStatusError,
			wantErr: false,
		},
		{
			name:    "invalid status",
			input:   "invalid",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty status",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseDocumentStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestAllDocumentStatuses(t *testing.T) {
	statuses := types.AllDocumentStatuses()
	gt.A(t, statuses).Length(2)

	for _, status := range statuses {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}
}

func TestDocumentStatus_String(t *testing.T) {
	gt.S(t, types.DocumentStatusOK.String()).Equal("OK")
	gt.S(t, types.DocumentStatusError.String()).Equal("Error")
}
