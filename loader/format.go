package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"gopkg.in/yaml.v3"

	"github.com/jokarl/lintrc/hclext"
	"github.com/jokarl/lintrc/lintrc"
)

// Format is a document syntax.
type Format string

// Supported formats.
const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return ""
}

// Parse decodes src in the given format into a document named name.
// filename is used in source ranges. Problems confined to single entries
// are recorded in Document.Diagnostics rather than returned.
func Parse(src []byte, filename, name string, format Format) (*lintrc.Document, error) {
	var (
		doc   *lintrc.Document
		diags hcl.Diagnostics
	)
	switch format {
	case FormatHCL:
		doc, diags = hclext.ParseDocument(src, filename, name)
	case FormatJSON:
		doc, diags = hclext.ParseJSONDocument(src, filename, name)
	case FormatYAML:
		return parseYAML(src, filename, name)
	default:
		return nil, fmt.Errorf("parse %s: unsupported format %q", filename, format)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}
	return doc, nil
}

// yamlDocument is the YAML configuration file structure.
type yamlDocument struct {
	Parser        string            `yaml:"parser"`
	Extends       stringList        `yaml:"extends"`
	Plugins       []string          `yaml:"plugins"`
	ParserOptions yamlParserOptions `yaml:"parserOptions"`
	Env           map[string]bool   `yaml:"env"`
	Globals       map[string]any    `yaml:"globals"`
	Rules         yaml.Node         `yaml:"rules"`
}

// yamlParserOptions represents the parserOptions section in YAML.
type yamlParserOptions struct {
	EcmaVersion any    `yaml:"ecmaVersion"`
	SourceType  string `yaml:"sourceType"`
}

// stringList accepts a single string or a sequence of strings.
type stringList []string

func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = stringList{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

func parseYAML(src []byte, filename, name string) (*lintrc.Document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	doc := &lintrc.Document{
		Name:    name,
		Parser:  raw.Parser,
		Extends: raw.Extends,
		Plugins: raw.Plugins,
		Env:     raw.Env,
		Globals: raw.Globals,
	}
	doc.ParserOptions.SourceType = raw.ParserOptions.SourceType
	if raw.ParserOptions.EcmaVersion != nil {
		v, err := lintrc.ParseEcmaVersion(raw.ParserOptions.EcmaVersion)
		if err != nil {
			doc.Diagnostics = append(doc.Diagnostics, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  lintrc.SummaryInvalidParserOption,
				Detail:   err.Error(),
				Subject:  &hcl.Range{Filename: filename},
			})
		} else {
			doc.ParserOptions.EcmaVersion = v
		}
	}

	if raw.Rules.Kind == 0 {
		return doc, nil
	}
	if raw.Rules.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse %s: line %d: rules must be a mapping", filename, raw.Rules.Line)
	}

	doc.Rules = make(map[string]any, len(raw.Rules.Content)/2)
	doc.Ranges = make(map[string]hcl.Range, len(raw.Rules.Content)/2)
	for i := 0; i+1 < len(raw.Rules.Content); i += 2 {
		key, value := raw.Rules.Content[i], raw.Rules.Content[i+1]
		rng := nodeRange(filename, key, value)

		var v any
		if err := value.Decode(&v); err != nil {
			doc.Diagnostics = append(doc.Diagnostics, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  lintrc.SummaryMalformedRuleEntry,
				Detail:   fmt.Sprintf("%q: %s", key.Value, err),
				Subject:  &rng,
				Extra:    lintrc.DiagnosticEntry{Document: name, Key: key.Value},
			})
			continue
		}
		doc.Rules[key.Value] = lintrc.NormalizeValue(v)
		doc.Ranges[key.Value] = rng
	}
	return doc, nil
}

// nodeRange spans a mapping entry from its key to its value.
// YAML nodes carry no byte offsets.
func nodeRange(filename string, key, value *yaml.Node) hcl.Range {
	return hcl.Range{
		Filename: filename,
		Start:    hcl.Pos{Line: key.Line, Column: key.Column},
		End:      hcl.Pos{Line: value.Line, Column: value.Column},
	}
}
