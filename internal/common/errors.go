// Package common defines shared constants and sentinel errors used across
// client and server layers of addrkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Credential and usage taxonomy. Transports collapse all of these
	// into a plain success flag.
	ErrEmptyField  = errors.New("empty field")
	ErrDuplicate   = errors.New("duplicate")
	ErrHashFailure = errors.New("hash failure")
	ErrStore       = errors.New("store error")
)
