package utils

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access to this resource is forbidden")
	ErrUnauthenticated    = errors.New("invalid or expired token")
	ErrIdentityNotFound   = errors.New("identity not found in token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("resource already exists")
	ErrConfiguration      = errors.New("invalid configuration")
)

// Error pairs a client-facing message with one of the sentinel kinds above,
// so errors.Is(err, ErrNotFound) keeps working after wrapping.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(message string) error { return &Error{Kind: ErrNotFound, Message: message} }

func Forbidden(message string) error { return &Error{Kind: ErrForbidden, Message: message} }

func Conflict(message string) error { return &Error{Kind: ErrConflict, Message: message} }

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

// Add records a message for field. The first message for a field wins.
func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when it holds at least one field error.
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}
