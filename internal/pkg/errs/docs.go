// Package errs provides standardized error types for the delivery cost engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the order factory and the adapters.
//
// The package includes the following error types:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed range
//   - InvalidNumericFormatError: For text that is not a base-10 numeral
//   - CurrencyMismatchError: For arithmetic across different currency codes
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is / errors.As support
//
// Adapters classify failures with errors.Is against the sentinels, so the HTTP
// and CLI layers never need to inspect message text.
package errs
