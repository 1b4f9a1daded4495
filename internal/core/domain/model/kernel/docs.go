// Package kernel provides the value objects shared by the whole pricing domain.
//
// The package includes:
//   - Number: an exact decimal normalized to two fractional digits
//   - Money: a Number paired with a currency code, never converted between currencies
//   - UUID: an identifier for delivery cost quotes
//
// All types are immutable values and safe for concurrent use. Constructors validate
// their input and report failures through the typed errors of internal/pkg/errs.
package kernel
