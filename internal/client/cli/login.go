package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashifkhan1545/fingerauth/internal/client/session"
	"github.com/kashifkhan1545/fingerauth/internal/common"
)

// Login prompts for credentials and runs a credential login attempt.
// Field-level validation problems are shown next to the field they belong
// to; transition outcomes (success, rejection, unreachable server) are
// rendered by the controller's event stream.
func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "error reading email", "error", err)
		return err
	}

	secret, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return err
	}
	defer common.WipeByteArray(secret)

	err = a.controller.Login(ctx, identifier, secret)

	var verr *session.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Identifier != "" {
			fmt.Fprintln(a.out, "email:", verr.Identifier)
		}
		if verr.Secret != "" {
			fmt.Fprintln(a.out, "password:", verr.Secret)
		}
	case errors.Is(err, session.ErrBusy), errors.Is(err, session.ErrAlreadyLoggedIn):
		fmt.Fprintln(a.out, err.Error())
	}
	return err
}
