package apperr

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound indicates an entity is absent for a given key.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("validation")
	// ErrPersistence indicates a store read/write failure.
	ErrPersistence = errors.New("persistence")
	// ErrLedger indicates a ledger call failure. Never surfaced to clients;
	// recovered locally and reported through advisory warnings.
	ErrLedger = errors.New("ledger")
	// ErrUnauthorized indicates a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a kind sentinel, a client-facing message, and the underlying
// cause. errors.Is(err, ErrX) matches the kind; Unwrap exposes the cause for
// logging.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.cause }

// NotFound tags an error as a not-found outcome.
func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: strings.TrimSpace(msg)}
}

// Validation tags an error as input validation failure.
func Validation(msg string) error {
	return &Error{kind: ErrValidation, msg: strings.TrimSpace(msg)}
}

// Persistence tags an underlying store failure. The op names the failed
// operation; the cause stays out of client responses, see PublicMessage.
func Persistence(op string, err error) error {
	return &Error{kind: ErrPersistence, msg: op, cause: err}
}

// Ledger tags a ledger call failure.
func Ledger(op string, err error) error {
	return &Error{kind: ErrLedger, msg: op, cause: err}
}

// Unauthorized tags an error as an auth failure.
func Unauthorized(msg string) error {
	return &Error{kind: ErrUnauthorized, msg: strings.TrimSpace(msg)}
}

// Status maps an error kind to its HTTP status code. Unknown kinds map to
// 500 so nothing falls through a catch-all with the wrong class.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-safe message for an error. Persistence
// causes are replaced by a stable string; everything else keeps its message
// but never its cause chain.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrPersistence) {
		return "storage operation failed"
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	return err.Error()
}
