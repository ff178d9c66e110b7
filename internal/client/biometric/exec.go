package biometric

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// DefaultHelper is the fingerprint verification helper shipped with fprintd
// on most Linux desktops.
const DefaultHelper = "fprintd-verify"

// ExecGate drives biometric confirmation through an external helper
// command. The helper blocks until the reader delivers a verdict: exit
// status 0 is a match, any other exit status is a mismatch or cancellation.
type ExecGate struct {
	helper string
	args   []string
}

// NewExecGate builds a gate around the given helper command. An empty
// helper falls back to DefaultHelper.
func NewExecGate(helper string, args ...string) *ExecGate {
	if helper == "" {
		helper = DefaultHelper
	}
	return &ExecGate{helper: helper, args: args}
}

// IsSupported reports whether the helper is present on this machine.
// A missing helper is a clean "not supported"; anything else from the
// lookup wraps ErrUnavailable.
func (g *ExecGate) IsSupported(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := exec.LookPath(g.helper)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Prompt runs the helper and interprets its exit status. The reason is
// passed along for helpers that can display it; fprintd-verify ignores
// extra arguments, so it is only forwarded when custom args were given.
func (g *ExecGate) Prompt(ctx context.Context, reason string) (bool, error) {
	args := g.args
	if len(args) > 0 {
		args = append(append([]string(nil), args...), reason)
	}

	cmd := exec.CommandContext(ctx, g.helper, args...)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The helper ran and said no: mismatch or cancellation.
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", ErrPrompt, err)
}
