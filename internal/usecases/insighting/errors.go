package insighting

import (
	"errors"
	"fmt"

	"github.com/stayview/booking-insights-api/pkg/apiErrors"
)

// Failure modes of the aggregation pipeline. Every derived view fails
// independently; one view's error never blocks another.
var (
	ErrEmptyInput   = errors.New("aggregation over an empty booking table")
	ErrDomain       = errors.New("field value outside its valid domain")
	ErrTypeMismatch = errors.New("field value unusable by the aggregation")
)

// InsightError carries the failing view and API code alongside the base error.
type InsightError struct {
	Err     error
	Code    string
	View    string
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.View, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.View, e.Err.Error())
}

// Unwrap returns the underlying sentinel.
func (e *InsightError) Unwrap() error {
	return e.Err
}

func newEmptyInputError(view string) *InsightError {
	return &InsightError{Err: ErrEmptyInput, Code: apiErrors.ErrEmptyInput, View: view}
}

func newDomainError(view string, details string) *InsightError {
	return &InsightError{Err: ErrDomain, Code: apiErrors.ErrDomainValue, View: view, Details: details}
}

func newTypeMismatchError(view string, details string) *InsightError {
	return &InsightError{Err: ErrTypeMismatch, Code: apiErrors.ErrTypeMismatch, View: view, Details: details}
}

// IsEmptyInputError reports whether err came from aggregating zero rows.
func IsEmptyInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsDomainError reports whether err came from a value outside its field's
// valid domain.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

// IsTypeMismatchError reports whether err came from a value the aggregation
// could not use numerically.
func IsTypeMismatchError(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
