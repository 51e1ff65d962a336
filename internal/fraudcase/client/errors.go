package client

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a failed call to the fraud service.
type ErrorCategory string

const (
	ErrorTimeout          ErrorCategory = "timeout"
	ErrorBadData          ErrorCategory = "bad_data"
	ErrorAuthentication   ErrorCategory = "authentication"
	ErrorProviderOutage   ErrorCategory = "provider_outage"
	ErrorContractMismatch ErrorCategory = "contract_mismatch"
	ErrorRateLimited      ErrorCategory = "rate_limited"
	ErrorInternal         ErrorCategory = "internal"
	// ErrorUnavailable is reported when no client could be constructed.
	ErrorUnavailable ErrorCategory = "unavailable"
)

// Error is a categorized fraud service failure.
type Error struct {
	Category   ErrorCategory
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fraud service [%s]: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("fraud service [%s]: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(category ErrorCategory, msg string, err error) *Error {
	return &Error{Category: category, Message: msg, Err: err}
}

func statusError(category ErrorCategory, status int, msg string) *Error {
	return &Error{Category: category, Message: msg, StatusCode: status}
}

// CategoryOf extracts the category from err, defaulting to internal.
func CategoryOf(err error) ErrorCategory {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ErrorInternal
}
