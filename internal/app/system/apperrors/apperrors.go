// Package apperrors defines the error taxonomy surfaced by the API.
//
// Every failure a handler can return maps to exactly one code. Stores expose
// sentinel errors; handlers translate those into an *Error so the transport
// layer can pick the status and body without inspecting store internals.
package apperrors

import (
	"errors"
	"net/http"
)

// Code classifies an error outcome.
type Code string

const (
	// CodeInvalid: malformed or missing required input. Caller error.
	CodeInvalid Code = "invalid"
	// CodeConflict: a uniqueness invariant would be violated.
	CodeConflict Code = "conflict"
	// CodeForbidden: the caller is not permitted to perform the operation.
	CodeForbidden Code = "forbidden"
	// CodeNotFound: a referenced entity does not exist.
	CodeNotFound Code = "not_found"
	// CodeNotAuthorized: credential mismatch. Deliberately covers both
	// unknown email and wrong password so registered emails cannot be probed.
	CodeNotAuthorized Code = "not_authorized"
)

// Error carries a code and a message safe to show to callers.
type Error struct {
	Code    Code
	Message string
	Err     error // optional cause, never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with the given code and caller-visible message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap is New with an underlying cause attached.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the Code from err, or false if err is not an *Error.
func CodeOf(err error) (Code, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code, true
	}
	return "", false
}

// HTTPStatus maps a code to its response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalid:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotAuthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
