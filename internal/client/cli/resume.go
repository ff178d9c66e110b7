package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashifkhan1545/fingerauth/internal/client/session"
)

// Resume attempts a biometric session resume. Most outcomes reach the user
// through the controller's event stream; the preference gate is reported
// here because it refuses before any transition starts.
func (a *App) Resume(ctx context.Context) error {
	err := a.controller.ResumeBiometric(ctx, "Authenticate to resume your session")
	switch {
	case errors.Is(err, session.ErrBiometricDisabled):
		fmt.Fprintln(a.out, "Fingerprint login is not enabled. Enable it with: biometric on")
	case errors.Is(err, session.ErrBusy), errors.Is(err, session.ErrAlreadyLoggedIn):
		fmt.Fprintln(a.out, err.Error())
	}
	return err
}

// SetBiometric toggles the biometric-resume preference. The preference is
// process-local and resets on restart.
func (a *App) SetBiometric(ctx context.Context, enabled bool) error {
	a.controller.SetBiometricEnabled(enabled)
	if enabled {
		fmt.Fprintln(a.out, "Fingerprint login enabled.")
	} else {
		fmt.Fprintln(a.out, "Fingerprint login disabled.")
	}
	return nil
}
