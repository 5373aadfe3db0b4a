package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so the API layer can map it to external
// signaling without parsing messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInsufficientFunds
	KindForbidden
	KindConflict
	KindValidation
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case KindForbidden:
		return "FORBIDDEN"
	case KindConflict:
		return "CONFLICT"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	default:
		return "INTERNAL_ERROR"
	}
}

// Error is a domain error with a stable machine-readable code. The core
// returns these instead of rendered strings; translation happens upstream.
type Error struct {
	Kind Kind
	Code string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.err }

// Is matches any *Error with the same Kind, so callers can test against the
// package sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound          = &Error{Kind: KindNotFound, Code: "NOT_FOUND"}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds, Code: "INSUFFICIENT_FUNDS"}
	ErrForbidden         = &Error{Kind: KindForbidden, Code: "FORBIDDEN"}
	ErrConflict          = &Error{Kind: KindConflict, Code: "CONFLICT"}
	ErrValidation        = &Error{Kind: KindValidation, Code: "VALIDATION_ERROR"}
	ErrUnauthorized      = &Error{Kind: KindUnauthorized, Code: "UNAUTHORIZED"}
)

// New builds a typed error with a stable code.
func New(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

// Wrap attaches an underlying cause to a typed error.
func Wrap(kind Kind, code string, err error) *Error {
	return &Error{Kind: kind, Code: code, err: err}
}

// KindOf extracts the Kind from an error chain, KindUnknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf extracts the stable code from an error chain.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return KindUnknown.String()
}
