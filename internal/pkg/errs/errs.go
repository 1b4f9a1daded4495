package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired is the sentinel for missing values.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid is the sentinel for values that fail validation.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for values outside their allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrInvalidNumericFormat is the sentinel for text that cannot be parsed as a decimal numeral.
	ErrInvalidNumericFormat = errors.New("invalid numeric format")
	// ErrCurrencyMismatch is the sentinel for arithmetic across different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the inclusive range [Min..Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange,
		e.ParamName,
		sanitize(e.Value),
		sanitize(e.Min),
		sanitize(e.Max),
	)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InvalidNumericFormatError reports text that is not a valid base-10 numeral.
type InvalidNumericFormatError struct {
	Value string
	Cause error
}

// NewInvalidNumericFormatError creates an InvalidNumericFormatError for the rejected text.
func NewInvalidNumericFormatError(value string) *InvalidNumericFormatError {
	return &InvalidNumericFormatError{Value: value}
}

// NewInvalidNumericFormatErrorWithCause creates an InvalidNumericFormatError with an underlying cause.
func NewInvalidNumericFormatErrorWithCause(value string, cause error) *InvalidNumericFormatError {
	return &InvalidNumericFormatError{Value: value, Cause: cause}
}

func (e *InvalidNumericFormatError) Error() string {
	return withCause(fmt.Sprintf("%s: %q", ErrInvalidNumericFormat, e.Value), e.Cause)
}

func (e *InvalidNumericFormatError) Unwrap() error {
	return ErrInvalidNumericFormat
}

// CurrencyMismatchError reports an operation between two different currency codes.
type CurrencyMismatchError struct {
	Expected string
	Actual   string
}

// NewCurrencyMismatchError creates a CurrencyMismatchError.
func NewCurrencyMismatchError(expected, actual string) *CurrencyMismatchError {
	return &CurrencyMismatchError{Expected: expected, Actual: actual}
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot combine %s with %s", ErrCurrencyMismatch, e.Expected, e.Actual)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
}

// IsInvalidInput reports whether err is caused by bad input rather than by a failing
// operation: a missing, invalid, out of range or non-numeric value.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrInvalidNumericFormat)
}
