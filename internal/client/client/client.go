package client

import "context"

// Client is the transport-agnostic contract for the remote authentication
// service.
type Client interface {
	// Login exchanges the credential pair for an opaque session token.
	// Failures are reported as ErrInvalidCredentials (server rejected the
	// credentials) or ErrUnavailable (the server could not be reached or
	// answered with something unusable).
	Login(ctx context.Context, username, password string) (string, error)

	// Ping checks server liveness.
	Ping(ctx context.Context) error

	// Close releases underlying transport resources.
	Close() error
}
