// Package cli is the terminal front end of the fingerauth client. It plays
// the role the two mobile screens played: collecting field input, invoking
// the session controller's operations, and rendering the resulting state
// transitions as messages and navigation hints.
//
// The package holds no session truth of its own; everything it displays is
// derived from the controller's snapshots and events.
package cli
