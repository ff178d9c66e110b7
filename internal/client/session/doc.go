// Package session implements the client's authentication state machine.
//
// # States and transitions
//
// A session is always in exactly one of three states: LoggedOut,
// Authenticating, or LoggedIn. The Controller is the only component that
// moves between them:
//
//   - Bootstrap: LoggedOut → LoggedIn when a token is already persisted
//     (the local slot is trusted without server revalidation).
//   - Login: LoggedOut → Authenticating → LoggedIn on success, back to
//     LoggedOut on rejection or an unreachable server.
//   - ResumeBiometric: LoggedOut → Authenticating → LoggedIn when the
//     device confirms the user and a token is persisted.
//   - Logout: LoggedIn → LoggedOut, wiping the persisted slot.
//
// While Authenticating, further login or resume requests are refused with
// ErrBusy rather than queued. Completions of in-flight work re-check the
// state and an attempt generation counter before applying, so stale
// results are discarded instead of applied.
//
// # Biometric preference
//
// The biometric-resume opt-in lives in memory only and resets on process
// start. The original design left it unclear whether re-opting-in every
// launch was intentional; this implementation keeps the behavior as found
// rather than guessing (see DESIGN.md).
package session
