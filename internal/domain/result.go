package domain

import "errors"

// errMissingCause stands in for a nil error handed to Failure so that a
// failed Result can never be mistaken for a successful one.
var errMissingCause = errors.New("failure reported without a cause")

// Result is the outcome of one asynchronous load: either a value or an
// error, never both. The zero Result is a success holding the zero value.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a successfully loaded value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a load error. The error is stored as given; callers that
// forward a Failure must not re-wrap it.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errMissingCause
	}
	return Result[T]{err: err}
}

// Get returns the value and error in the conventional Go form.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the loaded value. It is the zero value for a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure cause, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// MapResult transforms the value of a successful Result with fn. A failure
// passes through with its original error.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Result[U]{value: fn(r.value)}
}
