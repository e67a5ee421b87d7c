package apperror

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable category of an application error.
type Kind string

const (
	KindValidation             Kind = "validation_error"
	KindInvalidState           Kind = "invalid_state"
	KindGateNotSatisfied       Kind = "gate_not_satisfied"
	KindNotFound               Kind = "not_found"
	KindConcurrentModification Kind = "concurrent_modification"
	KindInternal               Kind = "internal"
)

// Error carries a Kind plus a reason that is safe to show to the user verbatim.
// Details holds optional structured context (e.g. which documents block a gate).
type Error struct {
	Kind    Kind
	Reason  string
	Details map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Wrap attaches a kind and reason to an underlying cause.
// The cause is kept for logging and errors.Is, never for display.
func Wrap(err error, kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// WithDetails returns a copy of e with the given details attached.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HasKind reports whether err is an *Error of the given kind.
func HasKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Reason returns the user-facing reason for err.
// Errors that are not *Error never leak their text.
func Reason(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return "internal server error"
}

func Validation(reason string) *Error {
	return New(KindValidation, reason)
}

func InvalidState(reason string) *Error {
	return New(KindInvalidState, reason)
}

func NotFound(reason string) *Error {
	return New(KindNotFound, reason)
}

func ConcurrentModification(reason string) *Error {
	return New(KindConcurrentModification, reason)
}

func GateNotSatisfied(reason string) *Error {
	return New(KindGateNotSatisfied, reason)
}

func Internal(err error, reason string) *Error {
	return Wrap(err, KindInternal, reason)
}
