// Package domainerrors carries the failure codes the case bridge reports
// across builders, the service and the HTTP layer.
package domainerrors

import "errors"

type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation_failed"
	CodeInternal     Code = "internal_error"
	// CodeInvariantViolation marks an order the builders cannot turn into a
	// case, such as a card payment with no billing address.
	CodeInvariantViolation Code = "invariant_violation"
)

// Error is a coded failure. Message is safe to return to HTTP callers; Err
// keeps the underlying cause for logs.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Code == e.Code
}

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches msg to err. A code already present in err's chain wins over
// code, so store and builder classifications survive service wrapping.
func Wrap(err error, code Code, msg string) error {
	var inner *Error
	if errors.As(err, &inner) {
		code = inner.Code
	}
	return &Error{Code: code, Message: msg, Err: err}
}

func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
