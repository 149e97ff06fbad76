package lintrc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDocumentNotFound is returned by a Lookup that has no document with
	// the requested name.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnresolvableExtension matches an UnresolvableExtensionError.
	ErrUnresolvableExtension = errors.New("unresolvable extension")

	// ErrCyclicExtension matches a CyclicExtensionError.
	ErrCyclicExtension = errors.New("cyclic extension")
)

// Diagnostic summaries used for per-entry problems.
const (
	SummaryMalformedRuleEntry  = "Malformed rule entry"
	SummaryInvalidParserOption = "Invalid parser option"
	SummaryInvalidGlobal       = "Invalid global"
)

// UnresolvableExtensionError reports an extends entry that the lookup could
// not locate.
type UnresolvableExtensionError struct {
	// Document is the name of the document whose extends list named it.
	Document string
	// Extension is the name that could not be located.
	Extension string
	// Err is the underlying lookup error.
	Err error
}

func (e *UnresolvableExtensionError) Error() string {
	return fmt.Sprintf("%s: cannot resolve extension %q", displayName(e.Document), e.Extension)
}

// Is reports whether target is ErrUnresolvableExtension.
func (e *UnresolvableExtensionError) Is(target error) bool {
	return target == ErrUnresolvableExtension
}

func (e *UnresolvableExtensionError) Unwrap() error {
	return e.Err
}

// CyclicExtensionError reports an extension chain that revisits a document
// still being resolved.
type CyclicExtensionError struct {
	// Document is the document whose extends list closed the cycle.
	Document string
	// Extension is the name that was revisited.
	Extension string
	// Chain is the resolution stack from the root, ending with Extension.
	Chain []string
}

func (e *CyclicExtensionError) Error() string {
	return fmt.Sprintf("%s: cyclic extension %q: %s", displayName(e.Document), e.Extension, strings.Join(e.Chain, " -> "))
}

// Is reports whether target is ErrCyclicExtension.
func (e *CyclicExtensionError) Is(target error) bool {
	return target == ErrCyclicExtension
}

func displayName(name string) string {
	if name == "" {
		return "<document>"
	}
	return name
}

// DiagnosticEntry is attached as Extra to the diagnostics the resolver
// produces, naming the entry that was skipped.
// Retrieve it with hcl.DiagnosticExtra[DiagnosticEntry].
type DiagnosticEntry struct {
	// Document is the name of the document containing the entry.
	Document string
	// Key is the rule name, global name or parser option name.
	Key string
}
