// Package guard provides ConstructorGuard, a marker embedded in value objects and
// aggregates so that zero values can be told apart from values built by their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is a
// zero value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
//
// Embed it in a struct with private fields and set it from the constructor:
//
//	type Money struct {
//	    amount   Number
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount Number, currency string) (Money, error) {
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
//
// The guard is a plain value: it is safe to copy and to read concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
