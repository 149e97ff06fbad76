package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/hcl/v2"

	"github.com/jokarl/lintrc/lintrc"
)

// AssertRules compares the expected settings with the resolved config.
// Only the listed rules are checked; other rules in the config are ignored.
// Use Absent to assert that a rule is not configured.
//
// Example:
//
//	helper.AssertRules(t, map[string]lintrc.Setting{
//	    "indent":                    lintrc.Disabled(),
//	    "@typescript-eslint/indent": lintrc.WithOptions(lintrc.Error, 2),
//	}, cfg)
func AssertRules(t *testing.T, want map[string]lintrc.Setting, got *lintrc.ResolvedConfig) {
	t.Helper()

	actual := make(map[string]lintrc.Setting, len(want))
	for name := range want {
		s, ok := got.Rule(name)
		if !ok {
			s = Absent
		}
		actual[name] = s
	}

	if diff := cmp.Diff(want, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

// Absent is the setting AssertRules reports for a rule the config does
// not configure.
var Absent = lintrc.Setting{Severity: -1}

// AssertRuleTable compares the complete rule table.
func AssertRuleTable(t *testing.T, want map[string]lintrc.Setting, got *lintrc.ResolvedConfig) {
	t.Helper()

	if diff := cmp.Diff(want, got.Rules(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("rule table mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoDiagnostics verifies that resolution reported no problems.
func AssertNoDiagnostics(t *testing.T, got *lintrc.ResolvedConfig) {
	t.Helper()

	diags := got.Diagnostics()
	if len(diags) > 0 {
		t.Errorf("expected no diagnostics, got %d:", len(diags))
		for i, d := range diags {
			t.Errorf("  [%d] %s: %s", i, d.Summary, d.Detail)
		}
	}
}

// AssertMalformedRules verifies that exactly the named rules were reported
// as malformed entries, in any order.
func AssertMalformedRules(t *testing.T, want []string, got *lintrc.ResolvedConfig) {
	t.Helper()

	var actual []string
	for _, d := range got.Diagnostics() {
		if d.Summary != lintrc.SummaryMalformedRuleEntry {
			continue
		}
		actual = append(actual, ruleOf(d))
	}

	opts := []cmp.Option{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	}
	if diff := cmp.Diff(want, actual, opts...); diff != "" {
		t.Errorf("malformed rules mismatch (-want +got):\n%s", diff)
	}
}

func ruleOf(d *hcl.Diagnostic) string {
	if entry, ok := hcl.DiagnosticExtra[lintrc.DiagnosticEntry](d); ok {
		return entry.Key
	}
	return ""
}
