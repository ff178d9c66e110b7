// Package validation contains pure credential format checks for the login
// form. The same functions back both per-keystroke field feedback and the
// submit-time gate, so the two can never drift apart.
package validation

import (
	"regexp"
	"strings"
)

// emailRe matches local-part "@" domain "." tld with no embedded whitespace.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a single field check. Message is empty when the
// field is valid.
type Result struct {
	Valid   bool
	Message string
}

// ValidateIdentifier checks the email field. Empty or whitespace-only input
// and inputs that do not look like an email address are rejected with a
// user-facing message.
func ValidateIdentifier(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Message: "Please enter an email"}
	}
	if !emailRe.MatchString(text) {
		return Result{Message: "Invalid email"}
	}
	return Result{Valid: true}
}

// ValidateSecret checks the password field. Only non-emptiness is enforced;
// there is deliberately no strength policy here.
func ValidateSecret(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Message: "Please enter a password"}
	}
	return Result{Valid: true}
}
