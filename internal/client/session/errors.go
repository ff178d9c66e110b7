package session

import "errors"

var (
	// ErrBusy is returned when a login or resume is requested while an
	// authentication attempt is already in flight. Requests are refused,
	// never queued.
	ErrBusy = errors.New("authentication already in progress")

	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrNotLoggedIn     = errors.New("not logged in")

	// ErrBiometricDisabled is returned when biometric resume is requested
	// without the user having enabled the preference.
	ErrBiometricDisabled = errors.New("biometric login is not enabled")

	// ErrBiometricUnsupported is returned when the device reports no
	// biometric capability; the prompt is never shown in that case.
	ErrBiometricUnsupported = errors.New("biometric authentication is not supported on this device")

	// ErrBiometricRejected is returned when the prompt ran but the user
	// cancelled or did not match.
	ErrBiometricRejected = errors.New("biometric authentication failed")

	// ErrNoStoredSession is returned when biometric confirmation succeeded
	// but there is no persisted session to resume. This is deliberately
	// distinct from any biometric failure: the user was identified, there
	// is just nothing to log them into.
	ErrNoStoredSession = errors.New("no session to resume")
)

// ValidationError reports per-field credential format problems found before
// any network call. A field's message is empty when that field is fine.
type ValidationError struct {
	Identifier string
	Secret     string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Identifier != "" && e.Secret != "":
		return e.Identifier + "; " + e.Secret
	case e.Identifier != "":
		return e.Identifier
	default:
		return e.Secret
	}
}
