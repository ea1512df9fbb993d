package domain

import "errors"

// Error kinds. Every error that reaches the HTTP boundary either wraps one of
// these or is treated as internal.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrAuthentication   = errors.New("authentication failed")
	ErrAuthorization    = errors.New("forbidden")
	ErrInvalidOperation = errors.New("invalid operation")
)

type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(message string) *Error {
	return NewError(ErrValidation, message)
}

func NotFound(message string) *Error {
	return NewError(ErrNotFound, message)
}
