// Package errs defines the domain error taxonomy. Services return these
// sentinels (optionally wrapped) and the HTTP adapter maps them to status
// codes without inspecting service internals.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthenticated - no or invalid session / credentials (HTTP 401).
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden - valid identity, wrong ownership or role (HTTP 403).
	ErrForbidden = errors.New("permission denied")
	// ErrAccountDisabled - valid credentials on a disabled student account (HTTP 403).
	ErrAccountDisabled = errors.New("account disabled")
	// ErrNotFound - the id does not resolve to a record (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrConflict - duplicate active membership/registration, taken email etc. (HTTP 400).
	ErrConflict = errors.New("conflict")
)

// ValidationError carries a human-readable reason for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Conflictf wraps ErrConflict with a message distinguishing the reason.
func Conflictf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConflict, format, args...)
}

// IsValidation reports whether the error cause is a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
