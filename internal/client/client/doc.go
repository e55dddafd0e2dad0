// Package client talks to the addrkeeper backend.
//
// The Client interface is the contract the CLI depends on; GRPCClient is
// its gRPC implementation. It tags every call with an x-request-id,
// applies a per-call timeout and maps both gRPC status codes and
// success:false replies to sentinel errors (ErrUnavailable,
// ErrUnauthorized, ErrRejected) that callers match with errors.Is. Limits
// outside the int32 wire range fail with ErrInvalidLimit before any call.
package client
