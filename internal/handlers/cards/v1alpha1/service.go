// Package v1alpha1 serves the card generation grpc service
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified grpc service name
	ServiceName = "cards.api.v1alpha1.CardService"

	// GenerateSeriesMethod is the full method name used by clients and interceptors
	GenerateSeriesMethod = "/" + ServiceName + "/GenerateSeries"
)

// CardServiceServer is the server API for CardService
type CardServiceServer interface {
	GenerateSeries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// CardServiceDesc describes CardService for grpc.ServiceRegistrar
var CardServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateSeries",
			Handler:    generateSeriesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cards/api/v1alpha1/card_service.proto",
}

// RegisterCardServiceServer registers srv on s
func RegisterCardServiceServer(s grpc.ServiceRegistrar, srv CardServiceServer) {
	s.RegisterService(&CardServiceDesc, srv)
}

func generateSeriesHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CardServiceServer).GenerateSeries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateSeriesMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CardServiceServer).GenerateSeries(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// CardServiceClient is the client API for CardService
type CardServiceClient interface {
	GenerateSeries(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type cardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCardServiceClient creates a CardService client on cc
func NewCardServiceClient(cc grpc.ClientConnInterface) CardServiceClient {
	return &cardServiceClient{cc: cc}
}

func (c *cardServiceClient) GenerateSeries(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GenerateSeriesMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
