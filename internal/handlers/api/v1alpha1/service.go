// Package v1alpha1 serves the simulation API over gRPC. Messages are
// google.protobuf.Struct values carrying the same JSON the CLI reads
// and writes, so the service needs no generated stubs.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsim.api.v1alpha1.SimulationService"

// Full method names
const (
	MethodSimulate       = "/" + ServiceName + "/Simulate"
	MethodGetRun         = "/" + ServiceName + "/GetRun"
	MethodListRuns       = "/" + ServiceName + "/ListRuns"
	MethodSavePreset     = "/" + ServiceName + "/SavePreset"
	MethodSimulatePreset = "/" + ServiceName + "/SimulatePreset"
)

// SimulationServiceServer is the server API for SimulationService
type SimulationServiceServer interface {
	Simulate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRuns(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SavePreset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SimulatePreset(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSimulationServiceServer registers srv on s
func RegisterSimulationServiceServer(s grpc.ServiceRegistrar, srv SimulationServiceServer) {
	s.RegisterService(&SimulationServiceDesc, srv)
}

type unaryMethod func(SimulationServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(SimulationServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*structpb.Struct))
		})
	}
}

// SimulationServiceDesc describes SimulationService for grpc.Server
var SimulationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SimulationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Simulate",
			Handler:    unaryHandler(MethodSimulate, SimulationServiceServer.Simulate),
		},
		{
			MethodName: "GetRun",
			Handler:    unaryHandler(MethodGetRun, SimulationServiceServer.GetRun),
		},
		{
			MethodName: "ListRuns",
			Handler:    unaryHandler(MethodListRuns, SimulationServiceServer.ListRuns),
		},
		{
			MethodName: "SavePreset",
			Handler:    unaryHandler(MethodSavePreset, SimulationServiceServer.SavePreset),
		},
		{
			MethodName: "SimulatePreset",
			Handler:    unaryHandler(MethodSimulatePreset, SimulationServiceServer.SimulatePreset),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsim/api/v1alpha1/simulation.proto",
}

// SimulationServiceClient is the client API for SimulationService
type SimulationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSimulationServiceClient wraps a connection
func NewSimulationServiceClient(cc grpc.ClientConnInterface) *SimulationServiceClient {
	return &SimulationServiceClient{cc: cc}
}

func (c *SimulationServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Simulate runs a party
func (c *SimulationServiceClient) Simulate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSimulate, in, opts...)
}

// GetRun fetches a stored run
func (c *SimulationServiceClient) GetRun(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetRun, in, opts...)
}

// ListRuns lists recent runs
func (c *SimulationServiceClient) ListRuns(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListRuns, in, opts...)
}

// SavePreset stores a named party
func (c *SimulationServiceClient) SavePreset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSavePreset, in, opts...)
}

// SimulatePreset runs a named party
func (c *SimulationServiceClient) SimulatePreset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSimulatePreset, in, opts...)
}
