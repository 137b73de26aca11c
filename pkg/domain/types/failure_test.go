package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/juris-lab/themis/pkg/domain/types"
)

func TestFailureKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind types.FailureKind
		want bool
	}{
		{
			name: "valid invalid_content",
			kind: types.FailureInvalidContent,
			want: true,
		},
		{
			name: "valid missing_url",
			kind: types.FailureMissingURL,
			want: true,
		},
		{
			name: "valid network_failure",
			kind: types.FailureNetwork,
			want: true,
		},
		{
			name: "valid parse_failure",
			kind: types.FailureParse,
			want: true,
		},
		{
			name: "invalid kind",
			kind: types.FailureKind("timeout"),
			want: false,
		},
		{
			name: "empty kind",
			kind: types.FailureKind(""),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.kind.IsValid()).True()
			} else {
				gt.B(t, tt.kind.IsValid()).False()
			}
		})
	}
}

func TestParseFailureKind(t *testing.T) {
	got, err := types.ParseFailureKind("network_failure")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.FailureNetwork)

	_, err = types.ParseFailureKind("bogus")
	gt.Error(t, err)
}

func TestAllFailureKinds(t *testing.T) {
	kinds := types.AllFailureKinds()
	gt.A(t, kinds).Length(4)

	for _, kind := range kinds {
		gt.B(t, kind.IsValid()).
			Describef("Kind %s should be valid", kind).
			True()
	}
}
