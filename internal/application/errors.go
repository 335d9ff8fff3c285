package application

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the transport can map them without string matching.
type Kind int

const (
	KindStorage Kind = iota
	KindValidation
	KindInvalidCredentials
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "storage"
	}
}

// Error is returned by every domain operation. Message is safe to show to callers.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind and message so fixed errors like ErrInvalidCredentials work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

var (
	// ErrInvalidCredentials is shared by unknown-email and wrong-password logins.
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}
	ErrNoToken            = &Error{Kind: KindUnauthenticated, Message: "No token provided"}
	ErrInvalidToken       = &Error{Kind: KindUnauthenticated, Message: "Invalid token"}
	ErrAdminRequired      = &Error{Kind: KindForbidden, Message: "Admin access required"}
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "Email already registered"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrProductNotFound    = &Error{Kind: KindNotFound, Message: "Product not found"}
	ErrReviewNotFound     = &Error{Kind: KindNotFound, Message: "Review not found"}
	ErrOrderNotFound      = &Error{Kind: KindNotFound, Message: "Order not found"}
)

func Validation(msg string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Details: details}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// StorageFailure hides the cause from callers; the cause stays reachable through Unwrap for logs.
func StorageFailure(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Server error", Err: err}
}

// KindOf reports the kind of err. Anything that is not an *Error counts as storage.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// AsError converts any error into an *Error, wrapping unknown ones as storage failures.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return StorageFailure(err)
}
