package biometric

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell utilities")
	}
}

func TestIsSupported_HelperPresent(t *testing.T) {
	skipOnWindows(t)
	g := NewExecGate("true")

	ok, err := g.IsSupported(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSupported_HelperMissing(t *testing.T) {
	g := NewExecGate("definitely-not-a-real-helper-binary")

	ok, err := g.IsSupported(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSupported_CancelledContext(t *testing.T) {
	g := NewExecGate("true")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.IsSupported(ctx)
	require.Error(t, err)
}

func TestPrompt_Match(t *testing.T) {
	skipOnWindows(t)
	g := NewExecGate("true")

	ok, err := g.Prompt(context.Background(), "resume session")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrompt_MismatchIsFalseNotError(t *testing.T) {
	skipOnWindows(t)
	g := NewExecGate("false")

	ok, err := g.Prompt(context.Background(), "resume session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompt_StartFailureWrapsErrPrompt(t *testing.T) {
	g := NewExecGate("definitely-not-a-real-helper-binary")

	_, err := g.Prompt(context.Background(), "resume session")
	require.ErrorIs(t, err, ErrPrompt)
}

func TestNewExecGate_EmptyHelperFallsBack(t *testing.T) {
	g := NewExecGate("")
	assert.Equal(t, DefaultHelper, g.helper)
}
