package client

import "context"

type Client interface {
	Close() error
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	AddAddress(ctx context.Context, username, password, address string) error
	TopAddresses(ctx context.Context, username string, limit int) ([]string, error)
	Ping(ctx context.Context) error
}
