package client

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/addrkeeper/internal/api"
	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.AddrKeeperServiceClient
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewAddrKeeperClient creates a lazily connecting client. A zero timeout
// leaves call deadlines to the caller.
func NewAddrKeeperClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewAddrKeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Signup(ctx context.Context, username, password string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Signup(ctx, &api.Credentials{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return ErrRejected
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &api.Credentials{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return ErrUnauthorized
	}
	return nil
}

func (s *GRPCClient) AddAddress(ctx context.Context, username, password, address string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &api.AddAddressRequest{
		Login:   api.Credentials{Username: username, Password: password},
		Address: address,
	}

	resp, err := s.client.AddAddress(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return ErrRejected
	}
	return nil
}

func (s *GRPCClient) TopAddresses(ctx context.Context, username string, limit int) ([]string, error) {
	if limit < 0 || limit > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.TopAddresses(ctx, &api.TopAddressesRequest{Username: username, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Addresses == nil {
		return []string{}, nil
	}
	return resp.Addresses, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
