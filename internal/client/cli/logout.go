package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashifkhan1545/fingerauth/internal/client/session"
)

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	err := a.controller.Logout(ctx)
	if errors.Is(err, session.ErrNotLoggedIn) {
		fmt.Fprintln(a.out, "Not logged in.")
	}
	return err
}
