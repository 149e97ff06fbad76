// Package helper provides testing utilities for lintrc configurations.
// Use TestLookup to resolve documents without touching the file system.
//
// Example:
//
//	func TestStrictConfig(t *testing.T) {
//	    lookup := helper.TestLookup(t, map[string]string{
//	        "base": `rules = { semi = "error" }`,
//	    })
//	    doc := helper.ParseDocument(t, "root", `
//	extends = ["base"]
//	rules   = { semi = ["error", "never"] }
//	`)
//
//	    cfg := helper.Resolve(t, lookup, doc)
//	    helper.AssertRules(t, map[string]lintrc.Setting{
//	        "semi": lintrc.WithOptions(lintrc.Error, "never"),
//	    }, cfg)
//	}
package helper

import (
	"testing"

	"github.com/jokarl/lintrc/hclext"
	"github.com/jokarl/lintrc/lintrc"
)

// TestLookup builds an in-memory lookup from HCL sources keyed by document
// name. Built-in presets remain available behind the given documents.
func TestLookup(t *testing.T, files map[string]string) lintrc.Lookup {
	t.Helper()

	rs := &lintrc.BuiltinRuleSet{Name: "test", Version: "0.0.0"}
	for name, src := range files {
		rs.Documents = append(rs.Documents, ParseDocument(t, name, src))
	}
	return lintrc.ChainLookup{rs, lintrc.Builtins()}
}

// ParseDocument parses HCL source into a document, failing the test on
// any structural error. Per-entry problems stay in Document.Diagnostics.
func ParseDocument(t *testing.T, name, src string) *lintrc.Document {
	t.Helper()

	doc, diags := hclext.ParseDocument([]byte(src), name+".hcl", name)
	if doc == nil {
		t.Fatalf("failed to parse %s: %s", name, diags.Error())
	}
	return doc
}

// Resolve resolves doc against lookup, failing the test on error.
func Resolve(t *testing.T, lookup lintrc.Lookup, doc *lintrc.Document) *lintrc.ResolvedConfig {
	t.Helper()

	cfg, err := lintrc.NewResolver(&lintrc.ResolverOptions{Lookup: lookup}).Resolve(doc)
	if err != nil {
		t.Fatalf("failed to resolve %s: %s", doc.Name, err)
	}
	return cfg
}
