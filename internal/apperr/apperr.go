// Package apperr carries the error taxonomy shared between services and the
// HTTP layer: validation (422), conflict (409), not found (404) and
// internal (500). Internal errors keep their cause for logging but expose a
// generic message to clients.
package apperr

import "fmt"

type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindUnauthorized
	KindInternal
)

// FieldErrors maps a request field to its violation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

type Error struct {
	Kind    Kind
	Message string
	Fields  FieldErrors
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(msg string, fields FieldErrors) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// KindOf classifies any error; non-apperr errors count as internal.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
