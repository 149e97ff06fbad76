package plugin

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/lintrc/lintrc"
)

// OpenOpts contains options for launching a rule-set plugin.
type OpenOpts struct {
	// Args are passed to the plugin executable.
	Args []string
	// Logger receives go-plugin output. Defaults to a null logger.
	Logger hclog.Logger
}

// Client is a running rule-set plugin.
type Client struct {
	// RuleSet is the dispensed rule-set. It implements lintrc.Lookup.
	RuleSet lintrc.RuleSet

	client *plugin.Client
}

// Open launches the plugin executable at path and dispenses its rule-set.
// Call Close to stop the plugin process.
func Open(path string, opts *OpenOpts) (*Client, error) {
	if opts == nil {
		opts = &OpenOpts{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  Handshake,
		Plugins:          PluginMap,
		Cmd:              exec.Command(path, opts.Args...),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Logger:           logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start plugin %s: %w", path, err)
	}
	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense plugin %s: %w", path, err)
	}
	rs, ok := raw.(lintrc.RuleSet)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("plugin %s: unexpected type %T", path, raw)
	}

	logger.Debug("plugin started", "path", path, "ruleset", rs.RuleSetName(), "version", rs.RuleSetVersion())
	return &Client{RuleSet: rs, client: client}, nil
}

// Close stops the plugin process.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Kill()
	}
}
