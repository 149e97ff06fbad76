package hclext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zclconf/go-cty/cty"
)

func TestToGoValue(t *testing.T) {
	tests := []struct {
		name    string
		input   cty.Value
		want    any
		wantErr bool
	}{
		{"string", cty.StringVal("never"), "never", false},
		{"bool", cty.True, true, false},
		{"integer", cty.NumberIntVal(2), 2, false},
		{"float", cty.NumberFloatVal(1.5), 1.5, false},
		{"null", cty.NullVal(cty.String), nil, false},
		{
			"tuple",
			cty.TupleVal([]cty.Value{cty.StringVal("error"), cty.NumberIntVal(120)}),
			[]any{"error", 120},
			false,
		},
		{
			"list",
			cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			[]any{"a", "b"},
			false,
		},
		{
			"object",
			cty.ObjectVal(map[string]cty.Value{
				"multiline":  cty.True,
				"consistent": cty.True,
				"max":        cty.NumberIntVal(80),
			}),
			map[string]any{"multiline": true, "consistent": true, "max": 80},
			false,
		},
		{"unknown", cty.UnknownVal(cty.String), nil, true},
		{"nested unknown", cty.TupleVal([]cty.Value{cty.UnknownVal(cty.Number)}), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToGoValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToGoValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToGoValue() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
