package domain

import "errors"

// ErrNotFound is the sentinel returned by repositories when a row does not
// exist. Services translate it into entity-specific errors.
var ErrNotFound = errors.New("not found")

// Code classifies a failure for the API error envelope.
type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeBadUserInput    Code = "BAD_USER_INPUT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

// Error is a classified failure. The code and reason travel to the client in
// the GraphQL error extensions; the cause stays server-side for logging.
type Error struct {
	Code    Code
	Reason  string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Extensions implements the graphql-go extensions contract so the
// classification ends up in the response error envelope.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": string(e.Code)}
	if e.Reason != "" {
		ext["reason"] = e.Reason
	}
	return ext
}

// WithCause returns a copy of e carrying cause for server-side inspection.
// The client-visible code, reason and message are unchanged.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, Reason: e.Reason, Message: e.Message, cause: cause}
}

func NewError(code Code, reason, message string) *Error {
	return &Error{Code: code, Reason: reason, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func ConflictError(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func BadInputError(reason, message string) *Error {
	return &Error{Code: CodeBadUserInput, Reason: reason, Message: message}
}

// ErrMalformedID rejects identifiers that do not match the 24 hex character
// format before any store round-trip.
var ErrMalformedID = BadInputError("malformed-identifier", "invalid ID format")

// HasCode reports whether err is, or wraps, a classified error with the
// given code.
func HasCode(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}
