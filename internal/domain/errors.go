package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Error kinds. Adapters wrap these so callers can branch with errors.Is
// without knowing which backend failed.
var (
	// ErrNotFound: the screen, item or selection asked for does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation: the caller's input was rejected. See ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrForbidden: the backend refused the caller's credentials.
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable: a backend could not be reached or answered 5xx.
	ErrUnavailable = errors.New("unavailable")
	// ErrNoData: a cache holds nothing for the request. The null cache
	// always reports it.
	ErrNoData = errors.New("no data")
	// ErrUpstream: a backend answered with a refusal. It accompanies the
	// specific kind, so a backend's 404 can be told from the caller's own.
	ErrUpstream = errors.New("upstream error")
	// ErrMalformed: a backend payload cannot be turned into domain items.
	ErrMalformed = errors.New("malformed payload")
)

// MsgRequired is the message for a missing required field.
const MsgRequired = "is required"

// ValidationError lists rejected fields with a message each. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// InvalidField returns a ValidationError for a single field.
func InvalidField(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
