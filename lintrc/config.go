package lintrc

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
)

// ResolvedConfig is the flattened result of resolving a Document and its
// extension chain. It is immutable: every accessor returns a copy.
type ResolvedConfig struct {
	name          string
	parser        string
	parserOptions ParserOptions
	env           map[string]bool
	globals       map[string]string
	plugins       []string
	rules         map[string]Setting
	diags         hcl.Diagnostics
}

func newResolvedConfig(name string) *ResolvedConfig {
	return &ResolvedConfig{
		name:    name,
		env:     make(map[string]bool),
		globals: make(map[string]string),
		rules:   make(map[string]Setting),
	}
}

// Name returns the name of the document the config was resolved from.
func (c *ResolvedConfig) Name() string {
	return c.name
}

// Parser returns the effective parser identifier.
func (c *ResolvedConfig) Parser() string {
	return c.parser
}

// ParserOptions returns the effective parser options.
func (c *ResolvedConfig) ParserOptions() ParserOptions {
	return c.parserOptions
}

// Rule returns the effective setting of a rule. ok is false when no
// document in the chain configures it, in which case the engine default
// applies.
func (c *ResolvedConfig) Rule(name string) (Setting, bool) {
	s, ok := c.rules[name]
	if !ok {
		return Setting{}, false
	}
	return s.clone(), true
}

// Rules returns a copy of the full rule table.
func (c *ResolvedConfig) Rules() map[string]Setting {
	out := make(map[string]Setting, len(c.rules))
	for name, s := range c.rules {
		out[name] = s.clone()
	}
	return out
}

// RuleNames returns the configured rule names, sorted.
func (c *ResolvedConfig) RuleNames() []string {
	names := make([]string, 0, len(c.rules))
	for name := range c.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Env returns a copy of the environment flags. Flags accumulate across the
// extension chain, but an explicit false in a later document disables an
// environment an extension enabled.
func (c *ResolvedConfig) Env() map[string]bool {
	out := make(map[string]bool, len(c.env))
	for k, v := range c.env {
		out[k] = v
	}
	return out
}

// EnabledEnvs returns the names of enabled environments, sorted. An
// environment disabled by a later document is not listed.
func (c *ResolvedConfig) EnabledEnvs() []string {
	var names []string
	for k, v := range c.env {
		if v {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Globals returns a copy of the global identifier table.
func (c *ResolvedConfig) Globals() map[string]string {
	out := make(map[string]string, len(c.globals))
	for k, v := range c.globals {
		out[k] = v
	}
	return out
}

// Plugins returns the plugin names in load order.
func (c *ResolvedConfig) Plugins() []string {
	return append([]string(nil), c.plugins...)
}

// Diagnostics returns the per-entry problems found during resolution,
// including those of extensions. Entries they refer to are absent from
// the rule table.
func (c *ResolvedConfig) Diagnostics() hcl.Diagnostics {
	return append(hcl.Diagnostics(nil), c.diags...)
}

// Document converts the config back into a Document with no extensions.
// Resolving that document yields the same rule table.
func (c *ResolvedConfig) Document() *Document {
	doc := &Document{
		Name:          c.name,
		Parser:        c.parser,
		ParserOptions: c.parserOptions,
		Env:           c.Env(),
		Plugins:       c.Plugins(),
		Rules:         make(map[string]any, len(c.rules)),
	}
	if len(c.globals) > 0 {
		doc.Globals = make(map[string]any, len(c.globals))
		for k, v := range c.globals {
			doc.Globals[k] = v
		}
	}
	for name, s := range c.rules {
		doc.Rules[name] = s.Tuple()
	}
	return doc
}

// mergeFrom overlays an already resolved config, later-wins.
func (c *ResolvedConfig) mergeFrom(o *ResolvedConfig, carryOptions bool) {
	if o.parser != "" {
		c.parser = o.parser
	}
	c.mergeParserOptions(o.parserOptions)
	for k, v := range o.env {
		c.env[k] = v
	}
	for k, v := range o.globals {
		c.globals[k] = v
	}
	c.addPlugins(o.plugins)
	for name, s := range o.rules {
		c.setRule(name, s, carryOptions)
	}
}

func (c *ResolvedConfig) mergeParserOptions(o ParserOptions) {
	if o.IsZero() {
		return
	}
	if o.EcmaVersion != 0 {
		c.parserOptions.EcmaVersion = o.EcmaVersion
	}
	if o.SourceType != "" {
		c.parserOptions.SourceType = o.SourceType
	}
}

func (c *ResolvedConfig) addPlugins(plugins []string) {
	for _, p := range plugins {
		found := false
		for _, existing := range c.plugins {
			if existing == p {
				found = true
				break
			}
		}
		if !found {
			c.plugins = append(c.plugins, p)
		}
	}
}

// setRule replaces the setting of a rule. With carryOptions, a bare
// severity keeps the options of the setting it replaces.
func (c *ResolvedConfig) setRule(name string, s Setting, carryOptions bool) {
	if carryOptions && !s.HasOptions() {
		if prev, ok := c.rules[name]; ok && prev.HasOptions() {
			s = Setting{Severity: s.Severity, Options: prev.Options}
		}
	}
	c.rules[name] = s.clone()
}
