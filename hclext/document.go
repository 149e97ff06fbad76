package hclext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"

	"github.com/jokarl/lintrc/lintrc"
)

// ParseDocument parses HCL source into a document named name.
// filename is used in source ranges.
func ParseDocument(src []byte, filename, name string) (*lintrc.Document, hcl.Diagnostics) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	doc, moreDiags := DecodeDocument(file.Body, name)
	return doc, append(diags, moreDiags...)
}

// ParseJSONDocument parses JSON source (the .eslintrc.json shape) into a
// document named name. Keys this package does not model, such as "root"
// or "settings", are ignored.
func ParseJSONDocument(src []byte, filename, name string) (*lintrc.Document, hcl.Diagnostics) {
	file, diags := hcljson.Parse(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	content, _, contentDiags := file.Body.PartialContent(ToHCLBodySchema(JSONDocumentSchema))
	diags = append(diags, contentDiags...)
	if diags.HasErrors() {
		return nil, diags
	}

	doc, entryDiags, structDiags := decodeContent(content, name)
	if structDiags.HasErrors() {
		return nil, append(diags, structDiags...)
	}
	if attr, ok := content.Attributes["parserOptions"]; ok {
		entryDiags = append(entryDiags, decodeEntries(attr, name, func(key string, v any, rng hcl.Range) error {
			return setParserOption(&doc.ParserOptions, key, v)
		})...)
	}
	doc.Diagnostics = entryDiags
	return doc, append(diags, entryDiags...)
}

// DecodeDocument decodes a configuration document from a native HCL body.
//
// Errors in individual rules, globals or environment entries do not stop
// decoding; they are recorded in the returned diagnostics and in
// Document.Diagnostics, and the entry is left out. Structural errors
// (unknown attributes, wrong types for parser or extends) return a nil
// document.
func DecodeDocument(body hcl.Body, name string) (*lintrc.Document, hcl.Diagnostics) {
	content, diags := body.Content(ToHCLBodySchema(DocumentSchema))
	if diags.HasErrors() {
		return nil, diags
	}

	doc, entryDiags, structDiags := decodeContent(content, name)
	if structDiags.HasErrors() {
		return nil, append(diags, structDiags...)
	}
	for _, block := range content.Blocks {
		if block.Type != "parser_options" {
			continue
		}
		entryDiags = append(entryDiags, decodeParserOptions(block.Body, &doc.ParserOptions)...)
	}
	doc.Diagnostics = entryDiags
	return doc, append(diags, entryDiags...)
}

// decodeContent decodes the attributes shared by the native and JSON
// forms. Structural problems are returned separately from per-entry ones.
func decodeContent(content *hcl.BodyContent, name string) (*lintrc.Document, hcl.Diagnostics, hcl.Diagnostics) {
	doc := &lintrc.Document{Name: name}

	var diags hcl.Diagnostics
	if attr, ok := content.Attributes["parser"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &doc.Parser)...)
	}
	if attr, ok := content.Attributes["extends"]; ok {
		extends, extDiags := decodeStringOrList(attr)
		diags = append(diags, extDiags...)
		doc.Extends = extends
	}
	if attr, ok := content.Attributes["plugins"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &doc.Plugins)...)
	}
	if diags.HasErrors() {
		return nil, nil, diags
	}

	var entryDiags hcl.Diagnostics
	if attr, ok := content.Attributes["env"]; ok {
		doc.Env = make(map[string]bool)
		entryDiags = append(entryDiags, decodeEntries(attr, name, func(key string, v any, _ hcl.Range) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("environment %q must be a bool", key)
			}
			doc.Env[key] = b
			return nil
		})...)
	}
	if attr, ok := content.Attributes["globals"]; ok {
		doc.Globals = make(map[string]any)
		entryDiags = append(entryDiags, decodeEntries(attr, name, func(key string, v any, _ hcl.Range) error {
			doc.Globals[key] = v
			return nil
		})...)
	}
	if attr, ok := content.Attributes["rules"]; ok {
		doc.Rules = make(map[string]any)
		doc.Ranges = make(map[string]hcl.Range)
		entryDiags = append(entryDiags, decodeEntries(attr, name, func(key string, v any, rng hcl.Range) error {
			doc.Rules[key] = v
			doc.Ranges[key] = rng
			return nil
		})...)
	}
	return doc, entryDiags, diags
}

// decodeStringOrList accepts either a single string or a list of strings.
func decodeStringOrList(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.Type() == cty.String && !val.IsNull() {
		return []string{val.AsString()}, nil
	}
	var list []string
	diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &list)...)
	return list, diags
}

// decodeEntries walks an object-valued attribute key by key. name is the
// document name recorded on malformed rule entries.
func decodeEntries(attr *hcl.Attribute, name string, fn func(key string, v any, rng hcl.Range) error) hcl.Diagnostics {
	pairs, diags := hcl.ExprMap(attr.Expr)
	if diags.HasErrors() {
		return diags
	}

	for _, pair := range pairs {
		keyVal, keyDiags := pair.Key.Value(nil)
		if keyDiags.HasErrors() || keyVal.Type() != cty.String || keyVal.IsNull() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid key",
				Detail:   fmt.Sprintf("Keys of %q must be strings.", attr.Name),
				Subject:  pair.Key.Range().Ptr(),
			})
			continue
		}
		key := keyVal.AsString()
		rng := hcl.RangeBetween(pair.Key.Range(), pair.Value.Range())

		err := decodeEntry(pair.Value, func(v any) error { return fn(key, v, rng) })
		if err == nil {
			continue
		}
		diag := &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid %s entry", attr.Name),
			Detail:   fmt.Sprintf("%q: %s", key, err),
			Subject:  rng.Ptr(),
		}
		switch attr.Name {
		case "rules":
			diag.Summary = lintrc.SummaryMalformedRuleEntry
			diag.Extra = lintrc.DiagnosticEntry{Document: name, Key: key}
		case "parserOptions":
			diag.Summary = lintrc.SummaryInvalidParserOption
		}
		diags = append(diags, diag)
	}
	return diags
}

func decodeEntry(expr hcl.Expression, fn func(v any) error) error {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diagnosticsError(diags)
	}
	gv, err := ToGoValue(val)
	if err != nil {
		return err
	}
	return fn(gv)
}

// diagnosticsError joins the error details of diags without source ranges.
func diagnosticsError(diags hcl.Diagnostics) error {
	var details []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Detail != "" {
			details = append(details, diag.Detail)
		} else {
			details = append(details, diag.Summary)
		}
	}
	return errors.New(strings.Join(details, "; "))
}

func decodeParserOptions(body hcl.Body, opts *lintrc.ParserOptions) hcl.Diagnostics {
	content, diags := body.Content(ToHCLBodySchema(DocumentSchema.blockBody("parser_options")))
	if diags.HasErrors() {
		return diags
	}

	for _, name := range []string{"ecma_version", "source_type"} {
		attr, ok := content.Attributes[name]
		if !ok {
			continue
		}
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		raw, err := ToGoValue(val)
		if err == nil {
			err = setParserOption(opts, name, raw)
		}
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  lintrc.SummaryInvalidParserOption,
				Detail:   err.Error(),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}
	return diags
}

// setParserOption sets one option by its native or JSON name. Unknown
// options are ignored.
func setParserOption(opts *lintrc.ParserOptions, key string, v any) error {
	switch key {
	case "ecma_version", "ecmaVersion":
		n, err := lintrc.ParseEcmaVersion(v)
		if err != nil {
			return err
		}
		opts.EcmaVersion = n
	case "source_type", "sourceType":
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("sourceType must be a string")
		}
		opts.SourceType = s
	}
	return nil
}
