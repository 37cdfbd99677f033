package domain

import (
	"errors"
	"fmt"
)

// ValidationCategory classifies a FilterValidationError. The set is
// closed; callers pattern-match on it to produce user-facing messages.
type ValidationCategory string

const (
	// ValidationInvalidStructure covers a missing/empty attribute slug or
	// a filter set whose clause list is absent.
	ValidationInvalidStructure ValidationCategory = "invalid-structure"
	// ValidationInvalidCondition covers an unrecognized condition value.
	ValidationInvalidCondition ValidationCategory = "invalid-condition"
	// ValidationInvalidFormat covers a value failing a required shape
	// check (UUID or email address).
	ValidationInvalidFormat ValidationCategory = "invalid-format"
	// ValidationArrayNotSupported covers a reference attribute given a
	// multi-valued input.
	ValidationArrayNotSupported ValidationCategory = "array-not-supported"
	// ValidationInvalidTarget covers a relationship composition whose
	// target filter is empty.
	ValidationInvalidTarget ValidationCategory = "invalid-target"
)

// FilterValidationError is the single error type raised by filter
// translation. All categories are fatal; none are retried.
type FilterValidationError struct {
	Category ValidationCategory
	Message  string
}

func (e *FilterValidationError) Error() string {
	return fmt.Sprintf("filter validation failed (%s): %s", e.Category, e.Message)
}

// NewValidationError builds a FilterValidationError with a formatted
// message.
func NewValidationError(category ValidationCategory, format string, args ...any) *FilterValidationError {
	return &FilterValidationError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// AsValidationError unwraps err into a FilterValidationError, if it is
// one.
func AsValidationError(err error) (*FilterValidationError, bool) {
	var verr *FilterValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationCategory reports whether err is a FilterValidationError
// with the given category.
func IsValidationCategory(err error, category ValidationCategory) bool {
	verr, ok := AsValidationError(err)
	return ok && verr.Category == category
}
