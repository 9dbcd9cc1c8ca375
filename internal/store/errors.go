package store

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes store failures
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
)

// Error is returned by every Store operation that fails
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// NewValidationError reports input that was rejected before any mutation
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError reports a missing task or one in the wrong deleted state
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func newInternalError(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// AsError returns the store error wrapped in err, if any
func AsError(err error) (*Error, bool) {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr, true
	}
	return nil, false
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindValidation
}

// IsNotFound reports whether err is a not-found failure
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindNotFound
}
