// Package grpc exposes the credential and usage services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/addrkeeper/internal/api"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"google.golang.org/grpc"
)

type credentialSvc interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}

type usageSvc interface {
	RecordUsage(ctx context.Context, username, address string) error
	TopAddresses(ctx context.Context, username string, limit int) []string
}

type GRPCServer struct {
	address        string
	credentials    credentialSvc
	usage          usageSvc
	logger         logging.Logger
	requestTimeout time.Duration
}

func NewGRPCServer(a string, l logging.Logger, cs credentialSvc, us usageSvc, requestTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		credentials:    cs,
		usage:          us,
		requestTimeout: requestTimeout,
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.timeoutInterceptor))

	api.RegisterAddrKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
