// Package lintrc resolves declarative lint rule configuration documents.
//
// A Document names a parser, an ordered list of rule-sets to extend, parser
// options, environment flags and a rule table. The Resolver flattens a
// Document and its whole extension chain into one immutable ResolvedConfig
// that is handed to an external linting engine.
//
// Key types:
//   - Severity: Rule enforcement level (Off, Warn, Error)
//   - Setting: One rule's effective value (severity plus optional options)
//   - Document: A configuration document as loaded from disk or a preset
//   - Lookup: Collaborator that locates extension documents by name
//   - Resolver: Produces a ResolvedConfig from a Document
//   - BuiltinRuleSet: Named bundle of documents, also used for the presets
package lintrc

import (
	"fmt"
	"strings"
)

// Severity represents the enforcement level of a rule.
// Numeric values match the integer form accepted in rule tables.
type Severity int

const (
	// Off disables the rule.
	Off Severity = iota
	// Warn reports violations without failing the run.
	Warn
	// Error reports violations and fails the run.
	Error
)

// String returns the token form of the severity.
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the known levels.
func (s Severity) Valid() bool {
	return s >= Off && s <= Error
}

// ParseSeverity parses a severity token ("off", "warn", "error", any case)
// or its integer form (0, 1, 2).
func ParseSeverity(v any) (Severity, error) {
	switch t := v.(type) {
	case Severity:
		if t.Valid() {
			return t, nil
		}
	case string:
		switch strings.ToLower(t) {
		case "off":
			return Off, nil
		case "warn":
			return Warn, nil
		case "error":
			return Error, nil
		}
	default:
		if n, ok := toInt(v); ok {
			if s := Severity(n); s.Valid() {
				return s, nil
			}
		}
	}
	return Off, fmt.Errorf("invalid severity %#v: expected \"off\", \"warn\", \"error\", 0, 1 or 2", v)
}
