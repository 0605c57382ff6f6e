package api

import (
	"errors"
	"fmt"

	"github.com/viant/clinic/client/auth/transport"
)

// ErrSessionExpired matches errors caused by an unrecoverable authorization failure.
var ErrSessionExpired = errors.New("session expired")

// Error is a non-2xx answer of the API.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Payload    []byte
	Outcome    transport.Outcome
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v %v: status %d: %v", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v %v: status %d", e.Method, e.Path, e.StatusCode)
}

// Is makes errors.Is(err, ErrSessionExpired) true for terminal authorization failures.
func (e *Error) Is(target error) bool {
	return target == ErrSessionExpired && e.Outcome == transport.TerminalAuthFailure
}

// sessionError wraps a transport error that ended the session.
type sessionError struct {
	err error
}

func (e *sessionError) Error() string { return ErrSessionExpired.Error() + ": " + e.err.Error() }

func (e *sessionError) Unwrap() []error { return []error{ErrSessionExpired, e.err} }
