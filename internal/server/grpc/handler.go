package grpc

import (
	"context"

	"github.com/dmitrijs2005/addrkeeper/internal/api"
)

// Every failure is reported as Success: false with an OK status; the cause
// is only logged.

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Signup(ctx context.Context, req *api.Credentials) (*api.GenericResponse, error) {
	if err := s.credentials.Register(ctx, req.Username, req.Password); err != nil {
		s.logger.Warn(ctx, "signup failed", "username", req.Username, "error", err, "request_id", requestID(ctx))
		return &api.GenericResponse{Success: false}, nil
	}
	return &api.GenericResponse{Success: true}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.Credentials) (*api.GenericResponse, error) {
	if err := s.credentials.Authenticate(ctx, req.Username, req.Password); err != nil {
		s.logger.Info(ctx, "login denied", "username", req.Username, "error", err, "request_id", requestID(ctx))
		return &api.GenericResponse{Success: false}, nil
	}
	return &api.GenericResponse{Success: true}, nil
}

// AddAddress requires a non-empty password field but does not verify it.
func (s *GRPCServer) AddAddress(ctx context.Context, req *api.AddAddressRequest) (*api.GenericResponse, error) {
	if req.Login.Password == "" {
		return &api.GenericResponse{Success: false}, nil
	}
	if err := s.usage.RecordUsage(ctx, req.Login.Username, req.Address); err != nil {
		s.logger.Warn(ctx, "add address failed", "username", req.Login.Username, "error", err, "request_id", requestID(ctx))
		return &api.GenericResponse{Success: false}, nil
	}
	return &api.GenericResponse{Success: true}, nil
}

func (s *GRPCServer) TopAddresses(ctx context.Context, req *api.TopAddressesRequest) (*api.AddressesResponse, error) {
	addresses := s.usage.TopAddresses(ctx, req.Username, int(req.Limit))
	return &api.AddressesResponse{Username: req.Username, Addresses: addresses}, nil
}
