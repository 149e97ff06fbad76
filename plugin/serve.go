// Package plugin serves lintrc rule-sets from plugin processes.
//
// A rule-set plugin is a small executable that bundles configuration
// documents (shareable configs, presets) and serves them to a host over
// gRPC using HashiCorp's go-plugin library. The host dispenses the plugin
// as a lintrc.RuleSet and passes it to the resolver as a Lookup.
//
// Example plugin main.go:
//
//	package main
//
//	import (
//	    "github.com/jokarl/lintrc/lintrc"
//	    "github.com/jokarl/lintrc/plugin"
//	)
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &lintrc.BuiltinRuleSet{
//	            Name:      "acme",
//	            Version:   "0.1.0",
//	            Documents: documents,
//	        },
//	    })
//	}
package plugin

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/lintrc/lintrc"
)

// ServeOpts contains options for serving the plugin.
type ServeOpts struct {
	// RuleSet is the plugin's rule-set implementation.
	RuleSet lintrc.RuleSet
	// Logger is passed to go-plugin. Defaults to a warn-level logger on
	// stderr.
	Logger hclog.Logger
}

// Serve starts the plugin server.
//
// It should be called from the plugin's main() function and blocks until
// the host disconnects. When invoked directly (without the magic cookie),
// the plugin prints a short description and returns.
func Serve(opts *ServeOpts) {
	if opts == nil || opts.RuleSet == nil {
		return
	}

	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(opts.RuleSet)
		return
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Level:  hclog.Warn,
			Output: os.Stderr,
		})
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &RuleSetPlugin{Impl: opts.RuleSet},
		},
		GRPCServer: plugin.DefaultGRPCServer,
		Logger:     logger,
	})
}

// printDirectInvocationMessage prints a helpful message when the plugin
// is invoked directly instead of by a host.
func printDirectInvocationMessage(rs lintrc.RuleSet) {
	os.Stderr.WriteString("This is a lintrc rule-set plugin.\n\n")
	os.Stderr.WriteString("Rule-set: " + rs.RuleSetName() + "\n")
	os.Stderr.WriteString("Version: " + rs.RuleSetVersion() + "\n")
	os.Stderr.WriteString("Documents:\n")
	for _, name := range rs.DocumentNames() {
		os.Stderr.WriteString("  - " + name + "\n")
	}
}
