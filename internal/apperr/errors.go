package apperr

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification carried by every API-facing error.
type Kind string

const (
	KindAuthentication Kind = "AUTHENTICATION"
	KindUnauthorized   Kind = "UNAUTHORIZED"
	KindValidation     Kind = "VALIDATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindInternal       Kind = "INTERNAL"
)

// Error pairs a caller-facing message with a Kind. An optional wrapped cause is
// kept for server-side logging and never rendered to the caller.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotAuthenticated() *Error {
	return &Error{Kind: KindAuthentication, Message: "Not authenticated"}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unanticipated failure. The cause stays server-side; the
// caller only ever sees the generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", cause: cause}
}

// KindOf classifies any error. Non-Error values are treated as Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message for err. Unclassified errors are
// downgraded to the generic Internal message so no detail leaks.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		if ae.Kind == KindInternal {
			return "Internal server error"
		}
		return ae.Message
	}
	return "Internal server error"
}
