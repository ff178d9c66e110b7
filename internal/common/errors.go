package common

import "errors"

// Sentinel errors shared across server layers. Callers match these with
// errors.Is.
var (
	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// token errors
	ErrorInvalidToken = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
)
