// Package apperr defines the typed domain errors shared by every service.
// All failures surfaced to clients go through this package so that each
// error carries a stable machine-readable code and a safe human message —
// internals (SQL errors, stack traces) are never exposed.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure. Handlers map kinds to HTTP statuses;
// services must never import net/http themselves.
type Kind int

const (
	// KindValidation: malformed or missing input.
	KindValidation Kind = iota
	// KindNotFound: a referenced entity does not exist.
	KindNotFound
	// KindBusiness: a domain rule was violated (stock, till, state machine).
	KindBusiness
	// KindForbidden: an authorization/policy boundary was crossed.
	KindForbidden
	// KindConflict: a uniqueness/concurrency violation (e.g. wristband in use).
	KindConflict
	// KindInternal: unexpected failure; details stay in the logs.
	KindInternal
)

// Error is the canonical domain error. Services return it directly; the
// transaction wrapper propagates it unchanged so the whole batch rolls back.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the error kind to the status the boundary should answer with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: msg}
}

// NotFound receives the resource name, not a full sentence.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: resource + " não encontrado"}
}

func Business(msg string) *Error {
	return &Error{Kind: KindBusiness, Code: "BUSINESS_ERROR", Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Code: "FORBIDDEN", Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: msg, cause: cause}
}

// From extracts the typed error from an error chain. The boolean is false for
// unexpected errors (driver failures etc.), which the boundary renders as 500.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, k Kind) bool {
	e, ok := From(err)
	return ok && e.Kind == k
}
