package client

import "errors"

var (
	// ErrInvalidCredentials means the server understood the request and
	// rejected the credential pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable means the server could not be reached, timed out, or
	// returned a response the client could not use. Retrying later may help.
	ErrUnavailable = errors.New("server unavailable")
)
