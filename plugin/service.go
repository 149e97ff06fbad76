// Package plugin serves lintrc rule-sets from plugin processes.
//
// This file describes the RuleSet gRPC service. Requests and responses use
// the protobuf well-known types (Empty, Value, ListValue, Struct), so the
// service needs no generated message code.

package plugin

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "lintrc.plugin.RuleSet"

// Full method names of the RuleSet service.
const (
	methodGetRuleSetName    = "/" + ServiceName + "/GetRuleSetName"
	methodGetRuleSetVersion = "/" + ServiceName + "/GetRuleSetVersion"
	methodGetDocumentNames  = "/" + ServiceName + "/GetDocumentNames"
	methodLookupDocument    = "/" + ServiceName + "/LookupDocument"
)

// RuleSetServer is the server API for the RuleSet service.
type RuleSetServer interface {
	GetRuleSetName(context.Context, *emptypb.Empty) (*structpb.Value, error)
	GetRuleSetVersion(context.Context, *emptypb.Empty) (*structpb.Value, error)
	GetDocumentNames(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	LookupDocument(context.Context, *structpb.Value) (*structpb.Struct, error)
}

// RegisterRuleSetServer registers srv with a gRPC server.
func RegisterRuleSetServer(s grpc.ServiceRegistrar, srv RuleSetServer) {
	s.RegisterService(&ruleSetServiceDesc, srv)
}

var ruleSetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RuleSetServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetRuleSetName", newEmpty, RuleSetServer.GetRuleSetName),
		unary("GetRuleSetVersion", newEmpty, RuleSetServer.GetRuleSetVersion),
		unary("GetDocumentNames", newEmpty, RuleSetServer.GetDocumentNames),
		unary("LookupDocument", newValue, RuleSetServer.LookupDocument),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lintrc/plugin/service.go",
}

func newEmpty() *emptypb.Empty { return &emptypb.Empty{} }
func newValue() *structpb.Value { return &structpb.Value{} }

// unary builds the method descriptor of a unary RPC.
func unary[Req, Resp proto.Message](name string, newReq func() Req, call func(RuleSetServer, context.Context, Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RuleSetServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RuleSetServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ruleSetClient is the client API for the RuleSet service.
type ruleSetClient struct {
	cc grpc.ClientConnInterface
}

func (c *ruleSetClient) GetRuleSetName(ctx context.Context, in *emptypb.Empty) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, methodGetRuleSetName, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ruleSetClient) GetRuleSetVersion(ctx context.Context, in *emptypb.Empty) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, methodGetRuleSetVersion, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ruleSetClient) GetDocumentNames(ctx context.Context, in *emptypb.Empty) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodGetDocumentNames, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ruleSetClient) LookupDocument(ctx context.Context, in *structpb.Value) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodLookupDocument, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
