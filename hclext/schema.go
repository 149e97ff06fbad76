// Package hclext decodes lint configuration documents written in HCL.
//
// The HCL form mirrors the JSON form of a configuration document:
//
//	parser  = "@typescript-eslint/parser"
//	extends = ["eslint:all", "plugin:@typescript-eslint/recommended"]
//	plugins = ["@typescript-eslint"]
//	env     = { node = true, es6 = true }
//	globals = { window = "readonly" }
//
//	parser_options {
//	  ecma_version = 2018
//	  source_type  = "module"
//	}
//
//	rules = {
//	  "indent"                    = "off"
//	  "@typescript-eslint/indent" = ["error", 2]
//	}
//
// Rule values are kept undecoded in lintrc.Document.Rules along with their
// source ranges, so that malformed entries are reported by the resolver
// with a precise location.
package hclext

import (
	"github.com/hashicorp/hcl/v2"
)

// BodySchema represents the expected structure of an HCL body.
type BodySchema struct {
	// Attributes defines expected attributes.
	Attributes []AttributeSchema
	// Blocks defines expected nested blocks.
	Blocks []BlockSchema
}

// AttributeSchema represents an expected HCL attribute.
type AttributeSchema struct {
	// Name is the attribute name to match.
	Name string
	// Required indicates if the attribute must be present.
	Required bool
}

// BlockSchema represents an expected HCL block.
type BlockSchema struct {
	// Type is the block type to match (e.g., "parser_options").
	Type string
	// LabelNames are the names for block labels.
	LabelNames []string
	// Body is the schema for the block's body content.
	Body *BodySchema
}

// ToHCLBodySchema converts a BodySchema to an hcl.BodySchema.
// Nested block bodies are not included; convert them separately.
func ToHCLBodySchema(schema *BodySchema) *hcl.BodySchema {
	if schema == nil {
		return nil
	}

	hclSchema := &hcl.BodySchema{
		Attributes: make([]hcl.AttributeSchema, len(schema.Attributes)),
		Blocks:     make([]hcl.BlockHeaderSchema, len(schema.Blocks)),
	}

	for i, attr := range schema.Attributes {
		hclSchema.Attributes[i] = hcl.AttributeSchema{
			Name:     attr.Name,
			Required: attr.Required,
		}
	}

	for i, block := range schema.Blocks {
		hclSchema.Blocks[i] = hcl.BlockHeaderSchema{
			Type:       block.Type,
			LabelNames: block.LabelNames,
		}
	}

	return hclSchema
}

// blockBody returns the schema of the named block's body, or nil.
func (s *BodySchema) blockBody(blockType string) *BodySchema {
	if s == nil {
		return nil
	}
	for _, b := range s.Blocks {
		if b.Type == blockType {
			return b.Body
		}
	}
	return nil
}

// DocumentSchema is the schema of a configuration document body.
var DocumentSchema = &BodySchema{
	Attributes: []AttributeSchema{
		{Name: "parser"},
		{Name: "extends"},
		{Name: "plugins"},
		{Name: "env"},
		{Name: "globals"},
		{Name: "rules"},
	},
	Blocks: []BlockSchema{
		{
			Type: "parser_options",
			Body: &BodySchema{
				Attributes: []AttributeSchema{
					{Name: "ecma_version"},
					{Name: "source_type"},
				},
			},
		},
	},
}

// JSONDocumentSchema is the schema of a JSON configuration document.
// JSON documents use the engine's own key names.
var JSONDocumentSchema = &BodySchema{
	Attributes: []AttributeSchema{
		{Name: "parser"},
		{Name: "extends"},
		{Name: "plugins"},
		{Name: "env"},
		{Name: "globals"},
		{Name: "rules"},
		{Name: "parserOptions"},
	},
}
