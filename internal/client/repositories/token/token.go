// Package token persists the single session-token slot on the device.
//
// The slot is a named key in a local SQLite key/value table. Absence of the
// key is the canonical "no session" state; an empty string is never stored
// and never returned. The store does not inspect the token in any way;
// validity and freshness are the session controller's concern.
package token

import (
	"context"
	"errors"
)

// Keys in the session table. slotKey matches the storage key the mobile
// app used for its token slot.
const (
	slotKey     = "authToken"
	deviceIDKey = "device_id"
)

// ErrStorage marks persistence I/O failures. Callers match it with
// errors.Is; the wrapped chain retains the driver error.
var ErrStorage = errors.New("storage failure")

// Repository is the durable session-token slot.
type Repository interface {
	// Save writes the token, replacing any existing value.
	Save(ctx context.Context, token string) error

	// Load returns the persisted token. ok is false when no token is
	// stored; the returned token is never the empty string when ok is true.
	Load(ctx context.Context) (token string, ok bool, err error)

	// Clear removes the persisted token, returning the slot to the
	// absent state. Clearing an already-empty slot is not an error.
	Clear(ctx context.Context) error

	// EnsureDeviceID returns the stable per-install identifier, creating
	// and persisting one on first use.
	EnsureDeviceID(ctx context.Context) (string, error)
}
