package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP edge can pick a status code
// without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindInvalidCredentials
	KindUnauthenticated
	KindUnimplemented
	KindUnavailable
)

var kindNames = map[Kind]string{
	KindInternal:           "internal",
	KindNotFound:           "not_found",
	KindConflict:           "conflict",
	KindValidation:         "validation",
	KindInvalidCredentials: "invalid_credentials",
	KindUnauthenticated:    "unauthenticated",
	KindUnimplemented:      "unimplemented",
	KindUnavailable:        "unavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var (
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrDuplicate          = &Error{Kind: KindConflict, Message: "resource already exists"}
	ErrValidation         = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
	ErrUnauthorized       = &Error{Kind: KindUnauthenticated, Message: "unauthorized"}
	ErrNotImplemented     = &Error{Kind: KindUnimplemented, Message: "not implemented"}
	ErrUnavailable        = &Error{Kind: KindUnavailable, Message: "service unavailable"}
	ErrInternal           = &Error{Kind: KindInternal, Message: "internal server error"}
)

// Error is a domain failure with a client-safe message. Err holds the
// underlying cause, which is logged but never sent to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// holds for every not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newError(KindConflict, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

func InvalidCredentials(format string, args ...interface{}) *Error {
	return newError(KindInvalidCredentials, format, args...)
}

func Unauthenticated(format string, args ...interface{}) *Error {
	return newError(KindUnauthenticated, format, args...)
}

func Unimplemented(format string, args ...interface{}) *Error {
	return newError(KindUnimplemented, format, args...)
}

func Unavailable(format string, args ...interface{}) *Error {
	return newError(KindUnavailable, format, args...)
}

// Internal wraps an unexpected failure behind a generic message.
func Internal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err. Anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return ErrInternal.Message
}
