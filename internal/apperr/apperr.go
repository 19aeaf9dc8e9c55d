// Package apperr defines the application's error taxonomy. Every failure a
// handler can surface maps to one of these kinds, which carry the HTTP status
// the response layer uses when shaping the error envelope.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	Unauthenticated
	InvalidCredentials
	Forbidden
	NotFound
	Internal
)

type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string { return e.Message }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated, InvalidCredentials:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Is allows errors.Is comparisons against another *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
