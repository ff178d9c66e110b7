// Package client contains client-side building blocks for talking to the
// authentication backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login, Ping, Close.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) speaking the
//     backend's login endpoint and mapping responses to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring the SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failure conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrInvalidCredentials, ErrUnavailable. The distinction matters:
// a rejection means the credentials are wrong, unavailability means the
// attempt never got a usable answer.
//
// All operations accept context.Context and honor cancellation/timeouts.
package client
