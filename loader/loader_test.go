package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jokarl/lintrc/lintrc"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"./base", []string{"./base"}},
		{"../shared/base.json", []string{"../shared/base.json"}},
		{"/etc/lint/base", []string{"/etc/lint/base"}},
		{"airbnb", []string{"airbnb", "eslint-config-airbnb"}},
		{"eslint-config-airbnb", []string{"eslint-config-airbnb"}},
		{"@acme", []string{"@acme", "@acme/eslint-config"}},
		{"@acme/strict", []string{"@acme/strict", "@acme/eslint-config-strict"}},
		{"@acme/eslint-config", []string{"@acme/eslint-config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Candidates(tt.name)); diff != "" {
				t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	l, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if diff := cmp.Diff([]string{"."}, l.dirs); diff != "" {
		t.Errorf("dirs mismatch (-want +got):\n%s", diff)
	}
	if l.logger == nil {
		t.Error("logger should default to a null logger")
	}
}

func TestFileLookup_LookupDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.hcl", `rules = { semi = "error" }`)
	writeFile(t, dir, "eslint-config-airbnb.json", `{"rules": {"quotes": ["error", "single"]}}`)
	writeFile(t, dir, "@acme/eslint-config-strict.yaml", "rules:\n  eqeqeq: error\n")
	writeFile(t, dir, "shared/base.yml", "env:\n  node: true\n")

	l, err := New(&Options{Dirs: []string{dir}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name     string
		lookup   string
		wantRule string
	}{
		{"hcl by bare name", "base", "semi"},
		{"hcl by relative name", "./base", "semi"},
		{"hcl with extension", "./base.hcl", "semi"},
		{"json shareable config", "airbnb", "quotes"},
		{"yaml scoped config", "@acme/strict", "eqeqeq"},
		{"nested yml", "./shared/base", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := l.LookupDocument(tt.lookup)
			if err != nil {
				t.Fatalf("LookupDocument(%q) error = %v", tt.lookup, err)
			}
			if doc.Name != tt.lookup {
				t.Errorf("Name = %q, want %q", doc.Name, tt.lookup)
			}
			if tt.wantRule != "" {
				if _, ok := doc.Rules[tt.wantRule]; !ok {
					t.Errorf("rule %q not loaded: %v", tt.wantRule, doc.Rules)
				}
			}
		})
	}
}

func TestFileLookup_NotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base/README", "not a config")

	l, err := New(&Options{Dirs: []string{dir}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, name := range []string{"missing", "./missing", "base", "eslint:recommended", "plugin:react/recommended"} {
		t.Run(name, func(t *testing.T) {
			_, err := l.LookupDocument(name)
			if !errors.Is(err, lintrc.ErrDocumentNotFound) {
				t.Errorf("error = %v, want ErrDocumentNotFound", err)
			}
		})
	}
}

func TestFileLookup_ParseErrorIsNotNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.hcl", `rules = {`)

	l, err := New(&Options{Dirs: []string{dir}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = l.LookupDocument("broken")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, lintrc.ErrDocumentNotFound) {
		t.Errorf("parse error should not match ErrDocumentNotFound: %v", err)
	}
}

func TestFileLookup_SearchOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFile(t, first, "base.json", `{"parser": "first"}`)
	writeFile(t, second, "base.hcl", `parser = "second"`)
	writeFile(t, second, "only.hcl", `parser = "second"`)

	l, err := New(&Options{Dirs: []string{first, second}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc, err := l.LookupDocument("base")
	if err != nil {
		t.Fatalf("LookupDocument() error = %v", err)
	}
	if doc.Parser != "first" {
		t.Errorf("Parser = %q, want %q", doc.Parser, "first")
	}

	doc, err = l.LookupDocument("only")
	if err != nil {
		t.Fatalf("LookupDocument() error = %v", err)
	}
	if doc.Parser != "second" {
		t.Errorf("Parser = %q, want %q", doc.Parser, "second")
	}
}

func TestFileLookup_Cache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "base.hcl", `parser = "cached"`)

	l, err := New(&Options{Dirs: []string{dir}, CacheSize: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first, err := l.LookupDocument("base")
	if err != nil {
		t.Fatalf("LookupDocument() error = %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := l.LookupDocument("base")
	if err != nil {
		t.Fatalf("cached LookupDocument() error = %v", err)
	}
	if second.Parser != "cached" {
		t.Errorf("Parser = %q, want %q", second.Parser, "cached")
	}
	if first == second {
		t.Error("lookups should not share the returned document")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("named after path", func(t *testing.T) {
		path := writeFile(t, dir, "a.hcl", `rules = { semi = "off" }`)
		doc, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if doc.Name != path {
			t.Errorf("Name = %q, want %q", doc.Name, path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.hcl"))
		if !errors.Is(err, lintrc.ErrDocumentNotFound) {
			t.Errorf("error = %v, want ErrDocumentNotFound", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "a.js", `module.exports = {}`)
		if _, err := LoadFile(path); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestFileLookup_Resolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `
extends: eslint:recommended
env:
  browser: true
rules:
  quotes: [error, double]
  semi: error
`)
	writeFile(t, dir, "strict.json", `{
  "extends": ["./base"],
  "rules": { "quotes": ["error", "single"], "eqeqeq": "error" }
}`)
	root := writeFile(t, dir, ".eslintrc.hcl", `
extends = ["./strict"]
env     = { node = true }
rules   = { semi = "off" }
`)

	files, err := New(&Options{Dirs: []string{dir}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	doc, err := LoadFile(root)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	resolver := lintrc.NewResolver(&lintrc.ResolverOptions{
		Lookup: lintrc.ChainLookup{lintrc.Builtins(), files},
	})
	cfg, err := resolver.Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := map[string]lintrc.Setting{
		"quotes":      lintrc.WithOptions(lintrc.Error, "single"),
		"semi":        lintrc.Disabled(),
		"eqeqeq":      lintrc.Level(lintrc.Error),
		"no-debugger": lintrc.Level(lintrc.Error),
	}
	for name, w := range want {
		if got, ok := cfg.Rule(name); !ok || !got.Equal(w) {
			t.Errorf("rule %q = %v, want %v", name, got, w)
		}
	}
	if diff := cmp.Diff([]string{"browser", "node"}, cfg.EnabledEnvs()); diff != "" {
		t.Errorf("EnabledEnvs() mismatch (-want +got):\n%s", diff)
	}
}
