package lintrc

import (
	"errors"
	"fmt"
	"sort"
)

// Lookup locates extension documents by name.
// A Lookup that has no document with the given name must return an error
// matching ErrDocumentNotFound; any other error aborts resolution.
type Lookup interface {
	LookupDocument(name string) (*Document, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(name string) (*Document, error)

// LookupDocument calls f(name).
func (f LookupFunc) LookupDocument(name string) (*Document, error) {
	return f(name)
}

// ChainLookup tries each lookup in order and returns the first document
// found. Errors other than ErrDocumentNotFound stop the search.
type ChainLookup []Lookup

// LookupDocument implements Lookup.
func (c ChainLookup) LookupDocument(name string) (*Document, error) {
	for _, l := range c {
		if l == nil {
			continue
		}
		doc, err := l.LookupDocument(name)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, ErrDocumentNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
}

// RuleSet is a named, versioned bundle of configuration documents that
// can be extended by name. Rule-sets are served in-process (BuiltinRuleSet)
// or from a plugin process.
type RuleSet interface {
	Lookup

	// RuleSetName returns the name of the rule-set (e.g. "eslint").
	RuleSetName() string

	// RuleSetVersion returns the version of the rule-set (e.g. "0.1.0").
	RuleSetVersion() string

	// DocumentNames returns the names of all documents in this rule-set.
	DocumentNames() []string
}

// BuiltinRuleSet provides an in-memory RuleSet.
//
// Example:
//
//	rs := &lintrc.BuiltinRuleSet{
//	    Name:    "acme",
//	    Version: "0.1.0",
//	    Documents: []*lintrc.Document{
//	        {Name: "acme:base", Rules: map[string]any{"semi": "error"}},
//	    },
//	}
type BuiltinRuleSet struct {
	// Name is the rule-set name.
	Name string
	// Version is the rule-set version.
	Version string
	// Documents are the documents in this rule-set, looked up by Name.
	Documents []*Document
}

// RuleSetName returns the name of the rule-set.
func (rs *BuiltinRuleSet) RuleSetName() string {
	return rs.Name
}

// RuleSetVersion returns the version of the rule-set.
func (rs *BuiltinRuleSet) RuleSetVersion() string {
	return rs.Version
}

// DocumentNames returns the names of all documents, sorted.
func (rs *BuiltinRuleSet) DocumentNames() []string {
	names := make([]string, len(rs.Documents))
	for i, doc := range rs.Documents {
		names[i] = doc.Name
	}
	sort.Strings(names)
	return names
}

// LookupDocument returns the document with the given name.
func (rs *BuiltinRuleSet) LookupDocument(name string) (*Document, error) {
	for _, doc := range rs.Documents {
		if doc.Name == name {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in rule-set %q", ErrDocumentNotFound, name, rs.Name)
}
