package lintrc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// LatestEcmaVersion is stored in ParserOptions.EcmaVersion when a document
// asks for ecmaVersion "latest".
const LatestEcmaVersion = -1

// Source types accepted in ParserOptions.SourceType.
const (
	SourceTypeScript   = "script"
	SourceTypeModule   = "module"
	SourceTypeCommonJS = "commonjs"
)

// ParserOptions holds the recognized parser options.
// Zero values mean "not specified" and never override an inherited value.
type ParserOptions struct {
	// EcmaVersion is the language version: an edition number (3, 5, 6...),
	// a year (2015...), or LatestEcmaVersion.
	EcmaVersion int
	// SourceType is "script", "module" or "commonjs".
	SourceType string
}

// IsZero reports whether no option is set.
func (o ParserOptions) IsZero() bool {
	return o.EcmaVersion == 0 && o.SourceType == ""
}

// Validate checks the options that are set.
func (o ParserOptions) Validate() error {
	if err := validateEcmaVersion(o.EcmaVersion); err != nil {
		return err
	}
	switch o.SourceType {
	case "", SourceTypeScript, SourceTypeModule, SourceTypeCommonJS:
	default:
		return fmt.Errorf("invalid sourceType %q: expected %q, %q or %q", o.SourceType, SourceTypeScript, SourceTypeModule, SourceTypeCommonJS)
	}
	return nil
}

func validateEcmaVersion(v int) error {
	switch {
	case v == 0, v == LatestEcmaVersion, v == 3, v == 5:
		return nil
	case v >= 6 && v <= 17:
		return nil
	case v >= 2015 && v <= 2026:
		return nil
	}
	return fmt.Errorf("invalid ecmaVersion %d", v)
}

// ParseEcmaVersion parses the document form of ecmaVersion: a number or the
// string "latest". Only the string maps to LatestEcmaVersion.
func ParseEcmaVersion(v any) (int, error) {
	if s, ok := v.(string); ok {
		if strings.EqualFold(s, "latest") {
			return LatestEcmaVersion, nil
		}
		return 0, fmt.Errorf("invalid ecmaVersion %q", s)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("invalid ecmaVersion %#v", v)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid ecmaVersion %d", n)
	}
	if err := validateEcmaVersion(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Global access levels.
const (
	GlobalReadonly = "readonly"
	GlobalWritable = "writable"
	GlobalOff      = "off"
)

// ParseGlobal normalizes a globals value. Booleans and the legacy spellings
// "readable" and "writeable" are accepted.
func ParseGlobal(v any) (string, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return GlobalWritable, nil
		}
		return GlobalReadonly, nil
	case string:
		switch strings.ToLower(t) {
		case "readonly", "readable", "false":
			return GlobalReadonly, nil
		case "writable", "writeable", "true":
			return GlobalWritable, nil
		case "off":
			return GlobalOff, nil
		}
	}
	return "", fmt.Errorf("invalid global value %#v: expected %q, %q or %q", v, GlobalReadonly, GlobalWritable, GlobalOff)
}

// Document is one configuration document, either loaded from a file or
// provided by a rule-set.
//
// Rules holds raw rule-table values exactly as decoded; they are parsed
// into Settings during resolution so that one malformed entry does not
// prevent the rest of the document from loading.
type Document struct {
	// Name identifies the document in errors and diagnostics.
	Name string
	// Parser is the parser identifier (e.g. "@typescript-eslint/parser").
	Parser string
	// Extends lists the rule-sets to inherit from, in order.
	Extends []string
	// ParserOptions are the locally specified parser options.
	ParserOptions ParserOptions
	// Env maps environment names to whether they are enabled.
	Env map[string]bool
	// Globals maps identifiers to raw access levels.
	Globals map[string]any
	// Plugins lists plugin names to load.
	Plugins []string
	// Rules maps rule names to raw settings (token, number or tuple).
	Rules map[string]any
	// Ranges optionally records where each rule entry was declared.
	// Keys are rule names.
	Ranges map[string]hcl.Range
	// Diagnostics carries problems found while decoding the document.
	Diagnostics hcl.Diagnostics
}

// RuleNames returns the rule names in the document, sorted.
func (d *Document) RuleNames() []string {
	return sortedKeys(d.Rules)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// rangeOf returns the declaration range of a rule, or nil if unknown.
func (d *Document) rangeOf(rule string) *hcl.Range {
	if d.Ranges == nil {
		return nil
	}
	if r, ok := d.Ranges[rule]; ok {
		return &r
	}
	return nil
}
