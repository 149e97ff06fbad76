// Package plugin serves lintrc rule-sets from plugin processes.
//
// This file contains conversion functions between protobuf Struct values
// and lintrc documents.

package plugin

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/lintrc/lintrc"
)

// toProtoDocument converts a document to a Struct.
// Source ranges are not transported; diagnostics keep their summary and
// detail only.
func toProtoDocument(doc *lintrc.Document) (*structpb.Struct, error) {
	if doc == nil {
		return nil, nil
	}

	m := map[string]any{
		"name":    doc.Name,
		"parser":  doc.Parser,
		"extends": stringsToList(doc.Extends),
		"plugins": stringsToList(doc.Plugins),
		"parserOptions": map[string]any{
			"ecmaVersion": doc.ParserOptions.EcmaVersion,
			"sourceType":  doc.ParserOptions.SourceType,
		},
	}

	env := make(map[string]any, len(doc.Env))
	for k, v := range doc.Env {
		env[k] = v
	}
	m["env"] = env

	globals := make(map[string]any, len(doc.Globals))
	for k, v := range doc.Globals {
		globals[k] = lintrc.NormalizeValue(v)
	}
	m["globals"] = globals

	rules := make(map[string]any, len(doc.Rules))
	for k, v := range doc.Rules {
		if s, ok := v.(lintrc.Setting); ok {
			rules[k] = s.Tuple()
			continue
		}
		rules[k] = lintrc.NormalizeValue(v)
	}
	m["rules"] = rules

	diags := make([]any, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		diags = append(diags, map[string]any{
			"severity": int(d.Severity),
			"summary":  d.Summary,
			"detail":   d.Detail,
		})
	}
	m["diagnostics"] = diags

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("encode document %q: %w", doc.Name, err)
	}
	return s, nil
}

// fromProtoDocument converts a Struct to a document.
// Integral numbers become int, matching the other document decoders.
func fromProtoDocument(s *structpb.Struct) *lintrc.Document {
	if s == nil {
		return nil
	}
	m := s.AsMap()

	doc := &lintrc.Document{
		Name:    asString(m["name"]),
		Parser:  asString(m["parser"]),
		Extends: asStrings(m["extends"]),
		Plugins: asStrings(m["plugins"]),
	}

	if po, ok := m["parserOptions"].(map[string]any); ok {
		if n, ok := lintrc.NormalizeValue(po["ecmaVersion"]).(int); ok {
			doc.ParserOptions.EcmaVersion = n
		}
		doc.ParserOptions.SourceType = asString(po["sourceType"])
	}

	if env, ok := m["env"].(map[string]any); ok && len(env) > 0 {
		doc.Env = make(map[string]bool, len(env))
		for k, v := range env {
			b, _ := v.(bool)
			doc.Env[k] = b
		}
	}
	if globals, ok := m["globals"].(map[string]any); ok && len(globals) > 0 {
		doc.Globals = make(map[string]any, len(globals))
		for k, v := range globals {
			doc.Globals[k] = lintrc.NormalizeValue(v)
		}
	}
	if rules, ok := m["rules"].(map[string]any); ok && len(rules) > 0 {
		doc.Rules = make(map[string]any, len(rules))
		for k, v := range rules {
			doc.Rules[k] = lintrc.NormalizeValue(v)
		}
	}

	if diags, ok := m["diagnostics"].([]any); ok {
		for _, raw := range diags {
			d, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			sev, _ := lintrc.NormalizeValue(d["severity"]).(int)
			doc.Diagnostics = append(doc.Diagnostics, &hcl.Diagnostic{
				Severity: hcl.DiagnosticSeverity(sev),
				Summary:  asString(d["summary"]),
				Detail:   asString(d["detail"]),
			})
		}
	}
	return doc
}

// toProtoNames converts a list of names to a ListValue.
func toProtoNames(names []string) *structpb.ListValue {
	values := make([]*structpb.Value, len(names))
	for i, name := range names {
		values[i] = structpb.NewStringValue(name)
	}
	return &structpb.ListValue{Values: values}
}

// fromProtoNames converts a ListValue to a list of names.
func fromProtoNames(list *structpb.ListValue) []string {
	if list == nil {
		return nil
	}
	names := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		names = append(names, v.GetStringValue())
	}
	return names
}

func stringsToList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
