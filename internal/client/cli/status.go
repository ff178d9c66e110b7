package cli

import (
	"context"
	"fmt"

	"github.com/kashifkhan1545/fingerauth/internal/client/session"
)

// Status prints the current session state and the biometric preference.
func (a *App) Status(ctx context.Context) error {
	st := a.controller.Current()

	switch st.State {
	case session.StateLoggedIn:
		fmt.Fprintln(a.out, "Logged in.")
	case session.StateAuthenticating:
		fmt.Fprintln(a.out, "Authenticating…")
	default:
		fmt.Fprintln(a.out, "Logged out.")
	}

	if a.controller.BiometricEnabled() {
		fmt.Fprintln(a.out, "Fingerprint login: enabled")
	} else {
		fmt.Fprintln(a.out, "Fingerprint login: disabled")
	}
	return nil
}
