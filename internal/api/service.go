package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "addrkeeper.AddrKeeperService"

const (
	PingFullMethod         = "/" + ServiceName + "/Ping"
	SignupFullMethod       = "/" + ServiceName + "/Signup"
	LoginFullMethod        = "/" + ServiceName + "/Login"
	AddAddressFullMethod   = "/" + ServiceName + "/AddAddress"
	TopAddressesFullMethod = "/" + ServiceName + "/TopAddresses"
)

// AddrKeeperServiceServer is implemented by the gRPC transport.
type AddrKeeperServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Signup(context.Context, *Credentials) (*GenericResponse, error)
	Login(context.Context, *Credentials) (*GenericResponse, error)
	AddAddress(context.Context, *AddAddressRequest) (*GenericResponse, error)
	TopAddresses(context.Context, *TopAddressesRequest) (*AddressesResponse, error)
}

func RegisterAddrKeeperServiceServer(s grpc.ServiceRegistrar, srv AddrKeeperServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodDesc.Handler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(AddrKeeperServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AddrKeeperServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AddrKeeperServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes AddrKeeperService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AddrKeeperServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(PingFullMethod, AddrKeeperServiceServer.Ping)},
		{MethodName: "Signup", Handler: unaryHandler(SignupFullMethod, AddrKeeperServiceServer.Signup)},
		{MethodName: "Login", Handler: unaryHandler(LoginFullMethod, AddrKeeperServiceServer.Login)},
		{MethodName: "AddAddress", Handler: unaryHandler(AddAddressFullMethod, AddrKeeperServiceServer.AddAddress)},
		{MethodName: "TopAddresses", Handler: unaryHandler(TopAddressesFullMethod, AddrKeeperServiceServer.TopAddresses)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "addrkeeper/api",
}

// AddrKeeperServiceClient is the client side of AddrKeeperService.
type AddrKeeperServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Signup(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*GenericResponse, error)
	Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*GenericResponse, error)
	AddAddress(ctx context.Context, in *AddAddressRequest, opts ...grpc.CallOption) (*GenericResponse, error)
	TopAddresses(ctx context.Context, in *TopAddressesRequest, opts ...grpc.CallOption) (*AddressesResponse, error)
}

type addrKeeperServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAddrKeeperServiceClient(cc grpc.ClientConnInterface) AddrKeeperServiceClient {
	return &addrKeeperServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *addrKeeperServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingFullMethod, in, opts)
}

func (c *addrKeeperServiceClient) Signup(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*GenericResponse, error) {
	return invoke[GenericResponse](ctx, c.cc, SignupFullMethod, in, opts)
}

func (c *addrKeeperServiceClient) Login(ctx context.Context, in *Credentials, opts ...grpc.CallOption) (*GenericResponse, error) {
	return invoke[GenericResponse](ctx, c.cc, LoginFullMethod, in, opts)
}

func (c *addrKeeperServiceClient) AddAddress(ctx context.Context, in *AddAddressRequest, opts ...grpc.CallOption) (*GenericResponse, error) {
	return invoke[GenericResponse](ctx, c.cc, AddAddressFullMethod, in, opts)
}

func (c *addrKeeperServiceClient) TopAddresses(ctx context.Context, in *TopAddressesRequest, opts ...grpc.CallOption) (*AddressesResponse, error) {
	return invoke[AddressesResponse](ctx, c.cc, TopAddressesFullMethod, in, opts)
}
