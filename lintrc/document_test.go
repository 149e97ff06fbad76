package lintrc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
)

func TestParserOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ParserOptions
		wantErr bool
	}{
		{"zero", ParserOptions{}, false},
		{"edition", ParserOptions{EcmaVersion: 6}, false},
		{"legacy edition", ParserOptions{EcmaVersion: 5}, false},
		{"year", ParserOptions{EcmaVersion: 2020}, false},
		{"latest", ParserOptions{EcmaVersion: LatestEcmaVersion}, false},
		{"module", ParserOptions{SourceType: SourceTypeModule}, false},
		{"commonjs", ParserOptions{SourceType: SourceTypeCommonJS}, false},
		{"edition 4", ParserOptions{EcmaVersion: 4}, true},
		{"future year", ParserOptions{EcmaVersion: 2099}, true},
		{"bad source type", ParserOptions{SourceType: "esm"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParserOptions_IsZero(t *testing.T) {
	tests := []struct {
		name string
		opts ParserOptions
		want bool
	}{
		{"zero", ParserOptions{}, true},
		{"ecma version", ParserOptions{EcmaVersion: 2020}, false},
		{"latest", ParserOptions{EcmaVersion: LatestEcmaVersion}, false},
		{"source type", ParserOptions{SourceType: SourceTypeModule}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseEcmaVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int
		wantErr bool
	}{
		{"int", 2018, 2018, false},
		{"float", float64(11), 11, false},
		{"latest", "latest", LatestEcmaVersion, false},
		{"latest upper case", "Latest", LatestEcmaVersion, false},
		{"numeric string", "2018", 0, true},
		{"invalid number", 4, 0, true},
		{"negative one", -1, 0, true},
		{"negative float", float64(-1), 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEcmaVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEcmaVersion(%#v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEcmaVersion(%#v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGlobal(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{"readonly", "readonly", GlobalReadonly, false},
		{"readable", "readable", GlobalReadonly, false},
		{"writable", "writable", GlobalWritable, false},
		{"writeable", "writeable", GlobalWritable, false},
		{"off", "off", GlobalOff, false},
		{"true", true, GlobalWritable, false},
		{"false", false, GlobalReadonly, false},
		{"string true", "true", GlobalWritable, false},
		{"unknown", "sometimes", "", true},
		{"number", 1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGlobal(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGlobal(%#v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGlobal(%#v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDocument_RuleNames(t *testing.T) {
	doc := &Document{Rules: map[string]any{"semi": "error", "curly": "warn", "@typescript-eslint/indent": "off"}}

	want := []string{"@typescript-eslint/indent", "curly", "semi"}
	if diff := cmp.Diff(want, doc.RuleNames()); diff != "" {
		t.Errorf("RuleNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_rangeOf(t *testing.T) {
	rng := hcl.Range{Filename: "a.hcl", Start: hcl.Pos{Line: 3, Column: 3}, End: hcl.Pos{Line: 3, Column: 17}}
	doc := &Document{Ranges: map[string]hcl.Range{"semi": rng}}

	got := doc.rangeOf("semi")
	if got == nil || *got != rng {
		t.Errorf("rangeOf(semi) = %v, want %v", got, rng)
	}
	if got := doc.rangeOf("curly"); got != nil {
		t.Errorf("rangeOf(curly) = %v, want nil", got)
	}
	if got := (&Document{}).rangeOf("semi"); got != nil {
		t.Errorf("rangeOf on document without ranges = %v, want nil", got)
	}
}
