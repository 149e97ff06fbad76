package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/lintrc/lintrc"
)

func testRuleSet() *lintrc.BuiltinRuleSet {
	return &lintrc.BuiltinRuleSet{
		Name:    "acme",
		Version: "1.2.0",
		Documents: []*lintrc.Document{
			{
				Name:    "acme:base",
				Extends: []string{lintrc.PresetRecommended},
				Env:     map[string]bool{"browser": true},
				Rules: map[string]any{
					"quotes": []any{"error", "single"},
					"semi":   "error",
				},
			},
			{
				Name:    "acme:strict",
				Extends: []string{"acme:base"},
				Rules:   map[string]any{"eqeqeq": []any{"error", "always"}},
			},
		},
	}
}

// failingRuleSet fails every lookup with an error other than not found.
type failingRuleSet struct {
	lintrc.BuiltinRuleSet
}

func (f *failingRuleSet) LookupDocument(string) (*lintrc.Document, error) {
	return nil, errors.New("disk on fire")
}

func TestGRPCRuleSetServer(t *testing.T) {
	srv := &GRPCRuleSetServer{impl: testRuleSet()}
	ctx := context.Background()

	t.Run("name and version", func(t *testing.T) {
		name, err := srv.GetRuleSetName(ctx, &emptypb.Empty{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := name.GetStringValue(); got != "acme" {
			t.Errorf("name = %q, want %q", got, "acme")
		}
		version, err := srv.GetRuleSetVersion(ctx, &emptypb.Empty{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := version.GetStringValue(); got != "1.2.0" {
			t.Errorf("version = %q, want %q", got, "1.2.0")
		}
	})

	t.Run("document names", func(t *testing.T) {
		names, err := srv.GetDocumentNames(ctx, &emptypb.Empty{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"acme:base", "acme:strict"}, fromProtoNames(names)); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		doc, err := srv.LookupDocument(ctx, structpb.NewStringValue("acme:base"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := doc.GetFields()["name"].GetStringValue(); got != "acme:base" {
			t.Errorf("name = %q, want %q", got, "acme:base")
		}
	})

	t.Run("lookup not found", func(t *testing.T) {
		_, err := srv.LookupDocument(ctx, structpb.NewStringValue("acme:missing"))
		if got := status.Code(err); got != codes.NotFound {
			t.Errorf("code = %s, want %s", got, codes.NotFound)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		failing := &GRPCRuleSetServer{impl: &failingRuleSet{}}
		_, err := failing.LookupDocument(ctx, structpb.NewStringValue("acme:base"))
		if got := status.Code(err); got != codes.Internal {
			t.Errorf("code = %s, want %s", got, codes.Internal)
		}
	})
}

func dispense(t *testing.T, rs lintrc.RuleSet) lintrc.RuleSet {
	t.Helper()

	client, server := plugin.TestPluginGRPCConn(t, false, map[string]plugin.Plugin{
		PluginName: &RuleSetPlugin{Impl: rs},
	})
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})

	raw, err := client.Dispense(PluginName)
	if err != nil {
		t.Fatalf("Dispense() error = %v", err)
	}
	remote, ok := raw.(lintrc.RuleSet)
	if !ok {
		t.Fatalf("dispensed %T, want lintrc.RuleSet", raw)
	}
	return remote
}

func TestGRPCRuleSetClient(t *testing.T) {
	remote := dispense(t, testRuleSet())

	if got := remote.RuleSetName(); got != "acme" {
		t.Errorf("RuleSetName() = %q, want %q", got, "acme")
	}
	if got := remote.RuleSetVersion(); got != "1.2.0" {
		t.Errorf("RuleSetVersion() = %q, want %q", got, "1.2.0")
	}
	if diff := cmp.Diff([]string{"acme:base", "acme:strict"}, remote.DocumentNames()); diff != "" {
		t.Errorf("DocumentNames() mismatch (-want +got):\n%s", diff)
	}

	t.Run("lookup", func(t *testing.T) {
		doc, err := remote.LookupDocument("acme:base")
		if err != nil {
			t.Fatalf("LookupDocument() error = %v", err)
		}
		if diff := cmp.Diff([]string{lintrc.PresetRecommended}, doc.Extends); diff != "" {
			t.Errorf("Extends mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]any{"error", "single"}, doc.Rules["quotes"]); diff != "" {
			t.Errorf("quotes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := remote.LookupDocument("acme:missing")
		if !errors.Is(err, lintrc.ErrDocumentNotFound) {
			t.Errorf("error = %v, want ErrDocumentNotFound", err)
		}
	})
}

func TestGRPCRuleSetClient_LookupFailure(t *testing.T) {
	remote := dispense(t, &failingRuleSet{BuiltinRuleSet: lintrc.BuiltinRuleSet{Name: "broken"}})

	_, err := remote.LookupDocument("acme:base")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, lintrc.ErrDocumentNotFound) {
		t.Errorf("error = %v, should not match ErrDocumentNotFound", err)
	}
}

func TestGRPCRuleSetClient_Resolve(t *testing.T) {
	remote := dispense(t, testRuleSet())

	resolver := lintrc.NewResolver(&lintrc.ResolverOptions{
		Lookup: lintrc.ChainLookup{lintrc.Builtins(), remote},
	})
	cfg, err := resolver.Resolve(&lintrc.Document{
		Name:    "root",
		Extends: []string{"acme:strict"},
		Rules:   map[string]any{"semi": []any{"error", "never"}},
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := map[string]lintrc.Setting{
		"quotes":      lintrc.WithOptions(lintrc.Error, "single"),
		"semi":        lintrc.WithOptions(lintrc.Error, "never"),
		"eqeqeq":      lintrc.WithOptions(lintrc.Error, "always"),
		"no-debugger": lintrc.Level(lintrc.Error),
	}
	for name, w := range want {
		if got, ok := cfg.Rule(name); !ok || !got.Equal(w) {
			t.Errorf("rule %q = %v, want %v", name, got, w)
		}
	}
	if diff := cmp.Diff([]string{"browser"}, cfg.EnabledEnvs()); diff != "" {
		t.Errorf("EnabledEnvs() mismatch (-want +got):\n%s", diff)
	}
}
