package lintrc

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Lookup locates extension documents. Defaults to Builtins().
	Lookup Lookup
	// Logger receives debug output about the resolution. Defaults to a
	// null logger.
	Logger hclog.Logger
	// CarryOptions makes a bare severity that overrides a setting with
	// options keep those options, as the linting engine itself does.
	// When false a later setting always replaces the earlier one whole.
	CarryOptions bool
}

// Resolver flattens documents into ResolvedConfigs.
// A Resolver holds no per-call state and is safe for concurrent use as
// long as its Lookup is.
type Resolver struct {
	lookup       Lookup
	logger       hclog.Logger
	carryOptions bool
}

// NewResolver returns a Resolver. opts may be nil.
func NewResolver(opts *ResolverOptions) *Resolver {
	r := &Resolver{}
	if opts != nil {
		r.lookup = opts.Lookup
		r.logger = opts.Logger
		r.carryOptions = opts.CarryOptions
	}
	if r.lookup == nil {
		r.lookup = Builtins()
	}
	if r.logger == nil {
		r.logger = hclog.NewNullLogger()
	}
	return r
}

// Resolve produces the flattened configuration of doc.
//
// Extensions are resolved in listed order, each recursively, and merged
// left to right; doc's own settings are applied last. Malformed rule
// entries do not fail the call: they are reported in the result's
// Diagnostics and left out of its rule table.
//
// Resolve fails with an UnresolvableExtensionError when an extension
// cannot be located and with a CyclicExtensionError when the extension
// chain revisits a document that is still being resolved.
func (r *Resolver) Resolve(doc *Document) (*ResolvedConfig, error) {
	if doc == nil {
		return nil, errors.New("resolve: nil document")
	}

	res := &resolution{
		Resolver: r,
		active:   make(map[string]bool),
		done:     make(map[string]*ResolvedConfig),
	}
	if doc.Name != "" {
		res.push(doc.Name)
	}

	cfg, err := res.resolve(doc)
	if err != nil {
		return nil, err
	}
	cfg.diags = res.diags
	r.logger.Debug("resolved configuration", "document", doc.Name, "rules", len(cfg.rules), "diagnostics", len(res.diags))
	return cfg, nil
}

// resolution is the state of a single Resolve call.
type resolution struct {
	*Resolver
	stack  []string
	active map[string]bool
	done   map[string]*ResolvedConfig
	diags  hcl.Diagnostics
}

func (s *resolution) push(name string) {
	s.stack = append(s.stack, name)
	s.active[name] = true
}

func (s *resolution) pop() {
	name := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	delete(s.active, name)
}

func (s *resolution) resolve(doc *Document) (*ResolvedConfig, error) {
	cfg := newResolvedConfig(doc.Name)
	for _, name := range doc.Extends {
		base, err := s.extension(doc, name)
		if err != nil {
			return nil, err
		}
		cfg.mergeFrom(base, s.carryOptions)
	}
	cfg.mergeFrom(s.local(doc), s.carryOptions)
	return cfg, nil
}

func (s *resolution) extension(parent *Document, name string) (*ResolvedConfig, error) {
	if s.active[name] {
		chain := append(append([]string(nil), s.stack...), name)
		return nil, &CyclicExtensionError{Document: parent.Name, Extension: name, Chain: chain}
	}
	if cfg, ok := s.done[name]; ok {
		s.logger.Trace("reusing resolved extension", "document", parent.Name, "extension", name)
		return cfg, nil
	}

	s.logger.Debug("resolving extension", "document", parent.Name, "extension", name)
	doc, err := s.lookup.LookupDocument(name)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, &UnresolvableExtensionError{Document: parent.Name, Extension: name, Err: err}
		}
		return nil, fmt.Errorf("%s: load extension %q: %w", displayName(parent.Name), name, err)
	}
	if doc == nil {
		return nil, &UnresolvableExtensionError{Document: parent.Name, Extension: name, Err: ErrDocumentNotFound}
	}
	if doc.Name != name {
		named := *doc
		named.Name = name
		doc = &named
	}

	s.push(name)
	cfg, err := s.resolve(doc)
	s.pop()
	if err != nil {
		return nil, err
	}
	s.done[name] = cfg
	return cfg, nil
}

// local builds the config contributed by doc alone, recording a diagnostic
// for every entry that cannot be used.
func (s *resolution) local(doc *Document) *ResolvedConfig {
	cfg := newResolvedConfig(doc.Name)
	s.diags = append(s.diags, doc.Diagnostics...)

	cfg.parser = doc.Parser
	if err := validateEcmaVersion(doc.ParserOptions.EcmaVersion); err != nil {
		s.report(doc, SummaryInvalidParserOption, "ecmaVersion", err, nil)
	} else {
		cfg.parserOptions.EcmaVersion = doc.ParserOptions.EcmaVersion
	}
	if err := (ParserOptions{SourceType: doc.ParserOptions.SourceType}).Validate(); err != nil {
		s.report(doc, SummaryInvalidParserOption, "sourceType", err, nil)
	} else {
		cfg.parserOptions.SourceType = doc.ParserOptions.SourceType
	}

	for k, v := range doc.Env {
		cfg.env[k] = v
	}
	for _, k := range sortedKeys(doc.Globals) {
		level, err := ParseGlobal(doc.Globals[k])
		if err != nil {
			s.report(doc, SummaryInvalidGlobal, k, err, nil)
			continue
		}
		cfg.globals[k] = level
	}
	cfg.addPlugins(doc.Plugins)

	for _, name := range doc.RuleNames() {
		if !ValidRuleName(name) {
			s.report(doc, SummaryMalformedRuleEntry, name, errors.New("invalid rule name"), doc.rangeOf(name))
			continue
		}
		setting, err := ParseSetting(doc.Rules[name])
		if err != nil {
			s.report(doc, SummaryMalformedRuleEntry, name, err, doc.rangeOf(name))
			continue
		}
		cfg.rules[name] = setting
	}
	return cfg
}

func (s *resolution) report(doc *Document, summary, key string, err error, subject *hcl.Range) {
	s.logger.Debug("skipping entry", "document", doc.Name, "key", key, "error", err)
	s.diags = append(s.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf("%s: %q: %s", displayName(doc.Name), key, err),
		Subject:  subject,
		Extra:    DiagnosticEntry{Document: doc.Name, Key: key},
	})
}
