// Package apperror carries the domain error taxonomy. Services return these;
// the API layer maps each kind onto an HTTP status and envelope.
package apperror

import "fmt"

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
	wrapped error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.wrapped }

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...interface{}) *Error {
	return newf(KindBadRequest, format, args...)
}

func Unauthorized(format string, args ...interface{}) *Error {
	return newf(KindUnauthorized, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return newf(KindForbidden, format, args...)
}

func NotFound(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

// Wrap keeps the original error reachable through errors.Unwrap while
// presenting a caller-safe message.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, wrapped: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
