// Package plugin serves lintrc rule-sets from plugin processes.
//
// This file implements the go-plugin GRPCPlugin interface, which bridges
// the native lintrc.RuleSet interface with gRPC.

package plugin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/lintrc/lintrc"
)

// callTimeout bounds each call from the host to the plugin.
const callTimeout = 30 * time.Second

// Ensure RuleSetPlugin implements plugin.GRPCPlugin.
var _ plugin.GRPCPlugin = (*RuleSetPlugin)(nil)

// RuleSetPlugin is the implementation of plugin.GRPCPlugin for the RuleSet service.
// This is used by both the host (to create a client) and the plugin (to create a server).
type RuleSetPlugin struct {
	plugin.Plugin
	// Impl is the concrete implementation of the RuleSet interface.
	// Only used when serving (plugin side).
	Impl lintrc.RuleSet
}

// GRPCServer is called by the plugin to register the gRPC server.
func (p *RuleSetPlugin) GRPCServer(_ *plugin.GRPCBroker, s *grpc.Server) error {
	RegisterRuleSetServer(s, &GRPCRuleSetServer{impl: p.Impl})
	return nil
}

// GRPCClient is called by the host to create a gRPC client.
func (p *RuleSetPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &GRPCRuleSetClient{client: &ruleSetClient{cc: c}}, nil
}

// =============================================================================
// GRPCRuleSetServer - Plugin side (implements RuleSetServer)
// =============================================================================

// GRPCRuleSetServer wraps a lintrc.RuleSet to implement the gRPC server.
// This runs in the plugin process and handles requests from the host.
type GRPCRuleSetServer struct {
	impl lintrc.RuleSet
}

// Ensure GRPCRuleSetServer implements RuleSetServer.
var _ RuleSetServer = (*GRPCRuleSetServer)(nil)

// GetRuleSetName returns the name of the rule-set.
func (s *GRPCRuleSetServer) GetRuleSetName(_ context.Context, _ *emptypb.Empty) (*structpb.Value, error) {
	return structpb.NewStringValue(s.impl.RuleSetName()), nil
}

// GetRuleSetVersion returns the version of the rule-set.
func (s *GRPCRuleSetServer) GetRuleSetVersion(_ context.Context, _ *emptypb.Empty) (*structpb.Value, error) {
	return structpb.NewStringValue(s.impl.RuleSetVersion()), nil
}

// GetDocumentNames returns the names of all documents in the rule-set.
func (s *GRPCRuleSetServer) GetDocumentNames(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return toProtoNames(s.impl.DocumentNames()), nil
}

// LookupDocument returns the named document.
// A missing document is reported with codes.NotFound.
func (s *GRPCRuleSetServer) LookupDocument(_ context.Context, req *structpb.Value) (*structpb.Struct, error) {
	name := req.GetStringValue()
	doc, err := s.impl.LookupDocument(name)
	if err != nil {
		if errors.Is(err, lintrc.ErrDocumentNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	if doc == nil {
		return nil, status.Errorf(codes.NotFound, "document %q not found", name)
	}
	out, err := toProtoDocument(doc)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// =============================================================================
// GRPCRuleSetClient - Host side (implements lintrc.RuleSet)
// =============================================================================

// GRPCRuleSetClient wraps the gRPC client to implement lintrc.RuleSet.
// This runs in the host process and calls the plugin, so a plugin's
// documents can be used directly as a resolver Lookup.
type GRPCRuleSetClient struct {
	client RuleSetServer
}

// Ensure GRPCRuleSetClient implements lintrc.RuleSet.
var _ lintrc.RuleSet = (*GRPCRuleSetClient)(nil)

// RuleSetName returns the name of the rule-set.
func (c *GRPCRuleSetClient) RuleSetName() string {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := c.client.GetRuleSetName(ctx, &emptypb.Empty{})
	if err != nil {
		return ""
	}
	return resp.GetStringValue()
}

// RuleSetVersion returns the version of the rule-set.
func (c *GRPCRuleSetClient) RuleSetVersion() string {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := c.client.GetRuleSetVersion(ctx, &emptypb.Empty{})
	if err != nil {
		return ""
	}
	return resp.GetStringValue()
}

// DocumentNames returns the names of all documents in the rule-set.
func (c *GRPCRuleSetClient) DocumentNames() []string {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := c.client.GetDocumentNames(ctx, &emptypb.Empty{})
	if err != nil {
		return nil
	}
	return fromProtoNames(resp)
}

// LookupDocument fetches a document from the plugin.
// codes.NotFound is mapped back to lintrc.ErrDocumentNotFound.
func (c *GRPCRuleSetClient) LookupDocument(name string) (*lintrc.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resp, err := c.client.LookupDocument(ctx, structpb.NewStringValue(name))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", lintrc.ErrDocumentNotFound, status.Convert(err).Message())
		}
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	return fromProtoDocument(resp), nil
}
