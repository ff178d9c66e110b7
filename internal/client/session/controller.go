package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kashifkhan1545/fingerauth/internal/client/biometric"
	"github.com/kashifkhan1545/fingerauth/internal/client/client"
	"github.com/kashifkhan1545/fingerauth/internal/client/repositories/token"
	"github.com/kashifkhan1545/fingerauth/internal/client/validation"
	"github.com/kashifkhan1545/fingerauth/internal/logging"
)

// trustLocalTokenWithoutRevalidation controls whether Bootstrap treats a
// locally stored token as a valid session without asking the server. The
// flow was designed around trusting the local slot; an expired or revoked
// token is only discovered when a protected call later rejects it. Flip
// this deliberately, not by accident.
const trustLocalTokenWithoutRevalidation = true

// Controller owns the session state machine. It is the single source of
// truth for "is the user logged in": it validates credentials, drives the
// remote login, gates biometric resume, and owns all reads and writes of
// the persisted token slot.
//
// All collaborator failures are absorbed here and translated into a state
// transition plus a user-facing message; nothing escapes to the caller as
// an unclassified fault.
type Controller struct {
	mu      sync.Mutex
	state   State
	token   string
	attempt uint64

	// biometricEnabled is the user's opt-in to biometric resume. It is
	// intentionally not persisted; see the package documentation.
	biometricEnabled bool

	store  token.Repository
	api    client.Client
	gate   biometric.Gate
	log    logging.Logger
	notify func(Event)
}

// NewController wires the state machine to its collaborators. The initial
// state is LoggedOut until Bootstrap has run.
func NewController(store token.Repository, api client.Client, gate biometric.Gate, log logging.Logger) *Controller {
	return &Controller{
		state: StateLoggedOut,
		store: store,
		api:   api,
		gate:  gate,
		log:   log,
	}
}

// SetNotify registers a callback invoked on every state transition. The
// callback runs outside the controller's lock, so it may call back into the
// controller.
func (c *Controller) SetNotify(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

// Current returns a snapshot of the session.
func (c *Controller) Current() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{State: c.state, Token: c.token}
}

// SetBiometricEnabled toggles the biometric-resume preference for this
// process run.
func (c *Controller) SetBiometricEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.biometricEnabled = enabled
}

// BiometricEnabled reports the current preference.
func (c *Controller) BiometricEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.biometricEnabled
}

func (c *Controller) emit(ev Event) {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Bootstrap performs the process-start check of the persisted token slot.
// A stored token moves the session straight to LoggedIn without contacting
// the server; an empty slot leaves it LoggedOut. A storage failure is
// reported and the session stays LoggedOut. Calling Bootstrap when the
// session has already left LoggedOut is a no-op.
func (c *Controller) Bootstrap(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateLoggedOut {
		c.mu.Unlock()
		return nil
	}
	attempt := c.attempt
	c.mu.Unlock()

	tok, ok, err := c.store.Load(ctx)
	if err != nil {
		c.log.Error(ctx, "bootstrap: cannot read stored session", "error", err)
		c.emit(Event{
			Status:  Status{State: StateLoggedOut},
			Message: "Could not read the stored session.",
			Nav:     NavLogin,
		})
		return err
	}

	if !ok || !trustLocalTokenWithoutRevalidation {
		c.emit(Event{Status: Status{State: StateLoggedOut}, Nav: NavLogin})
		return nil
	}

	c.mu.Lock()
	if c.state != StateLoggedOut || c.attempt != attempt {
		c.mu.Unlock()
		return nil
	}
	c.state = StateLoggedIn
	c.token = tok
	c.mu.Unlock()

	c.log.Info(ctx, "session restored from stored token")
	c.emit(Event{
		Status:  Status{State: StateLoggedIn, Token: tok},
		Message: "Session restored.",
		Nav:     NavHome,
	})
	return nil
}

// Login runs a credential login attempt.
//
// Both fields are validated first; if either is invalid, no network call is
// made and a *ValidationError with per-field messages is returned. While an
// attempt is in flight the session is Authenticating and any further login
// or resume request is refused with ErrBusy.
//
// On success the session becomes LoggedIn and the token is persisted
// best-effort: a storage failure is logged but does not revert the live
// session, which simply will not survive a restart. On rejection or an
// unreachable server the session returns to LoggedOut with messages that
// keep the two causes distinguishable.
//
// The caller owns the secret buffer and should wipe it once Login returns.
func (c *Controller) Login(ctx context.Context, identifier string, secret []byte) error {
	idRes := validation.ValidateIdentifier(identifier)
	secRes := validation.ValidateSecret(string(secret))
	if !idRes.Valid || !secRes.Valid {
		return &ValidationError{Identifier: idRes.Message, Secret: secRes.Message}
	}

	attempt, err := c.beginAttempt("Signing in…", false)
	if err != nil {
		return err
	}

	tok, loginErr := c.api.Login(ctx, identifier, string(secret))

	c.mu.Lock()
	if c.state != StateAuthenticating || c.attempt != attempt {
		c.mu.Unlock()
		c.log.Warn(ctx, "discarding stale login result", "attempt", attempt)
		return nil
	}

	if loginErr != nil {
		c.state = StateLoggedOut
		c.token = ""
		c.mu.Unlock()

		msg := "Could not reach the server. Check your connection and try again."
		if errors.Is(loginErr, client.ErrInvalidCredentials) {
			msg = "Authentication failed: incorrect email or password."
		}
		c.log.Info(ctx, "login attempt failed", "error", loginErr)
		c.emit(Event{Status: Status{State: StateLoggedOut}, Message: msg, Nav: NavLogin})
		return loginErr
	}

	c.state = StateLoggedIn
	c.token = tok
	c.mu.Unlock()

	c.emit(Event{
		Status:  Status{State: StateLoggedIn, Token: tok},
		Message: "Login successful.",
		Nav:     NavHome,
	})

	if err := c.store.Save(ctx, tok); err != nil {
		// The in-memory session stays live; it just won't survive restart.
		c.log.Error(ctx, "cannot persist session token", "error", err)
	}
	return nil
}

// ResumeBiometric attempts to resume the persisted session after a
// biometric confirmation. It requires the preference to be enabled and the
// session to be LoggedOut. The capability check runs before the prompt; an
// unsupported device never sees the prompt. A successful prompt without a
// stored token yields ErrNoStoredSession, a different condition from any
// biometric failure.
func (c *Controller) ResumeBiometric(ctx context.Context, reason string) error {
	attempt, err := c.beginAttempt("Waiting for biometric confirmation…", true)
	if err != nil {
		return err
	}

	supported, err := c.gate.IsSupported(ctx)
	if err != nil {
		return c.failAttempt(ctx, attempt,
			fmt.Errorf("biometric capability check: %w", err),
			"Could not query biometric support on this device.")
	}
	if !supported {
		return c.failAttempt(ctx, attempt, ErrBiometricUnsupported,
			"Fingerprint authentication is not supported on this device.")
	}

	match, err := c.gate.Prompt(ctx, reason)
	if err != nil {
		return c.failAttempt(ctx, attempt,
			fmt.Errorf("biometric prompt: %w", err),
			"Biometric authentication failed. Sign in with your password.")
	}
	if !match {
		return c.failAttempt(ctx, attempt, ErrBiometricRejected,
			"Authentication failed.")
	}

	tok, ok, err := c.store.Load(ctx)
	if err != nil {
		return c.failAttempt(ctx, attempt,
			fmt.Errorf("load stored session: %w", err),
			"Could not read the stored session.")
	}
	if !ok {
		return c.failAttempt(ctx, attempt, ErrNoStoredSession,
			"No stored session found. Sign in with your password.")
	}

	c.mu.Lock()
	if c.state != StateAuthenticating || c.attempt != attempt {
		c.mu.Unlock()
		c.log.Warn(ctx, "discarding stale biometric result", "attempt", attempt)
		return nil
	}
	c.state = StateLoggedIn
	c.token = tok
	c.mu.Unlock()

	c.emit(Event{
		Status:  Status{State: StateLoggedIn, Token: tok},
		Message: "Authentication successful.",
		Nav:     NavHome,
	})
	return nil
}

// Logout ends the session. The in-memory state becomes LoggedOut
// unconditionally; a failure to wipe the durable slot is reported but does
// not keep the user logged in.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateLoggedIn {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	c.state = StateLoggedOut
	c.token = ""
	c.attempt++
	c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "cannot clear stored session token", "error", err)
		c.emit(Event{
			Status:  Status{State: StateLoggedOut},
			Message: "Logged out, but the stored session could not be removed.",
			Nav:     NavLogin,
		})
		return err
	}

	c.emit(Event{
		Status:  Status{State: StateLoggedOut},
		Message: "Logout successful.",
		Nav:     NavLogin,
	})
	return nil
}

// beginAttempt moves LoggedOut → Authenticating, refusing any request made
// from another state. When requirePreference is set, the biometric
// preference is checked inside the same critical section, so a concurrent
// toggle cannot slip in between the check and the transition. It returns
// the attempt generation used by the stale-result guard.
func (c *Controller) beginAttempt(message string, requirePreference bool) (uint64, error) {
	c.mu.Lock()
	if requirePreference && !c.biometricEnabled {
		c.mu.Unlock()
		return 0, ErrBiometricDisabled
	}
	switch c.state {
	case StateAuthenticating:
		c.mu.Unlock()
		return 0, ErrBusy
	case StateLoggedIn:
		c.mu.Unlock()
		return 0, ErrAlreadyLoggedIn
	}
	c.attempt++
	attempt := c.attempt
	c.state = StateAuthenticating
	c.mu.Unlock()

	c.emit(Event{Status: Status{State: StateAuthenticating}, Message: message})
	return attempt, nil
}

// failAttempt resolves an attempt as failed: the session returns to
// LoggedOut and the user-facing message is emitted. If the controller has
// moved on since the attempt started, the result is discarded.
func (c *Controller) failAttempt(ctx context.Context, attempt uint64, cause error, message string) error {
	c.mu.Lock()
	if c.state != StateAuthenticating || c.attempt != attempt {
		c.mu.Unlock()
		c.log.Warn(ctx, "discarding stale attempt failure", "attempt", attempt, "error", cause)
		return nil
	}
	c.state = StateLoggedOut
	c.token = ""
	c.mu.Unlock()

	c.log.Info(ctx, "authentication attempt failed", "error", cause)
	c.emit(Event{Status: Status{State: StateLoggedOut}, Message: message, Nav: NavLogin})
	return cause
}
