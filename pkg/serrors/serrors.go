// Package serrors provides semantic error kinds shared by the proxy, billing
// and account layers. A kind decides the HTTP status and the coarse error code
// a caller sees; the wrapped cause stays server-side.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct {
	s      string
	status int
}

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and can be matched with errors.Is/As through the Error wrapper. Errors of
// this kind map to 500 unless the kind is created with NewKindStatus.
func NewKind(name string) Kind { return kind{s: name} }

// NewKindStatus creates a kind that HTTPStatus maps to status.
func NewKindStatus(name string, status int) Kind { return kind{s: name, status: status} }

// Default kinds. Packages that need a narrower vocabulary (the backend client
// for instance) declare their own with NewKind.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKindStatus("NOT_FOUND", http.StatusNotFound)
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKindStatus("UNAUTHORIZED", http.StatusUnauthorized)
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKindStatus("FORBIDDEN", http.StatusForbidden)
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKindStatus("BAD_REQUEST", http.StatusBadRequest)
	// ErrConflict indicates a state conflict.
	ErrConflict = NewKindStatus("CONFLICT", http.StatusConflict)
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKindStatus("INTERNAL", http.StatusInternalServerError)
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKindStatus("TIMEOUT", http.StatusGatewayTimeout)
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKindStatus("UNAVAILABLE", http.StatusServiceUnavailable)
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As extracts either the kind sentinel or a type from the wrapped chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost kind found in err's chain. Plain errors and nil
// report ErrInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ErrInternal
	}

	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the outermost *Error in err's chain, or
// fallback when there is none or it is empty.
func MessageOf(err error, fallback string) string {
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return fallback
}

// HTTPStatus returns the response status for err's kind.
func HTTPStatus(err error) int {
	if k, ok := KindOf(err).(kind); ok && k.status != 0 {
		return k.status
	}

	return http.StatusInternalServerError
}

// Code returns the name of err's kind, e.g. "NOT_FOUND".
func Code(err error) string {
	return KindOf(err).Error()
}
