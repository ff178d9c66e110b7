// Package biometric integrates the device's biometric subsystem.
//
// A Gate answers two questions: can this device do biometrics at all, and
// does the person at the device match an enrolled identity right now. It
// attests identity only; whether a session exists is a separate question
// that belongs to the session controller.
package biometric

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means the capability query itself failed, as opposed
	// to a clean "not supported" answer.
	ErrUnavailable = errors.New("biometric subsystem unavailable")

	// ErrPrompt means the confirmation prompt failed at the OS or hardware
	// level, as opposed to the user cancelling or not matching.
	ErrPrompt = errors.New("biometric prompt failed")
)

// Gate queries device biometric capability and prompts for confirmation.
type Gate interface {
	// IsSupported reports whether the device can perform biometric
	// confirmation at all.
	IsSupported(ctx context.Context) (bool, error)

	// Prompt shows a device-native confirmation with the given reason.
	// It returns true only on a genuine successful match; false covers
	// both user cancellation and a failed match.
	Prompt(ctx context.Context, reason string) (bool, error)
}
