package service

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced to the router. Credential and session failures
// are intentionally uninformative: the message never distinguishes an
// unknown email from a wrong password, or a missing session from an
// expired one.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrSessionNotFound    = errors.New("session not found")
	ErrEmailTaken         = errors.New("email already registered")
)

// ErrNoUpdateFields reports a profile update carrying no recognized field.
var ErrNoUpdateFields = &ValidationError{Reason: "no fields to update"}

// ValidationError reports malformed input. When produced by registration or
// profile update it aggregates every offending field rather than stopping
// at the first, so a client can surface all problems at once. The message
// is safe to show to users.
type ValidationError struct {
	Reason string
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return "invalid " + strings.Join(e.Fields, ", ")
}
